package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseProgram is Parse's top-level dispatch: module source runs
// parseModuleItemList, script source runs parseStatementList with a
// directive prologue. If tokens remain once the body is exhausted, that
// is a fatal error.
func (p *Parser) parseProgram() *ast.Program {
	start := p.start()
	prog := ast.NewProgram()
	prog.SourceType = string(p.sourceType)

	if p.sourceType == pipeline.Module {
		prog.Body = p.parseModuleItemList()
	} else {
		prog.Body = p.parseStatementList(true, p.atEOF)
	}

	if !p.atEOF() {
		p.fatalf("unexpected token %s after end of program", p.sc.CurrentToken())
	}

	return finish(p, prog, start)
}

func (p *Parser) atEOF() bool { return p.sc.CurrentToken().Type == token.EOF }
func (p *Parser) atRBrace() bool { return p.sc.CurrentToken().Is("}") }

// parseModuleItemList parses a module's top-level item list: a mix of
// import/export declarations and ordinary statement-list items. Module
// source is strict from the first token; the scanner's strict-mode flag
// is already set before the parser runs.
func (p *Parser) parseModuleItemList() []ast.ModuleItem {
	var body []ast.ModuleItem
	for !p.atEOF() {
		body = append(body, p.parseModuleItem())
	}
	return body
}

func (p *Parser) parseModuleItem() ast.ModuleItem {
	tok := p.sc.CurrentToken()
	switch {
	case tok.Is("import"):
		return p.parseImportDeclaration()
	case tok.Is("export"):
		return p.parseExportDeclaration()
	default:
		return p.parseStatementListItem()
	}
}

// parseStatementList parses items until isEnd reports true, handling the
// directive prologue when allowDirectives is set: a leading run of
// string-literal ExpressionStatements, `"use strict"` among them enabling
// strict mode for the remainder of this list. The scanner's strict-mode
// flag is saved and restored around the whole list so a directive found
// here never leaks to the enclosing list.
func (p *Parser) parseStatementList(allowDirectives bool, isEnd func() bool) []ast.Statement {
	return withStrictMode(p, false, func() []ast.Statement {
		var body []ast.Statement
		inPrologue := allowDirectives
		for !isEnd() && !p.atEOF() {
			stmt := p.parseStatementListItem()
			if inPrologue {
				if raw, ok := directiveRaw(stmt); ok {
					if raw == `"use strict"` || raw == `'use strict'` {
						p.sc.SetStrictMode(true)
					}
				} else {
					inPrologue = false
				}
			}
			body = append(body, stmt)
		}
		return body
	})
}

// directiveRaw reports the raw source text of stmt if it is a directive
// prologue entry: an ExpressionStatement wrapping a string Literal.
func directiveRaw(stmt ast.Statement) (string, bool) {
	exprStmt, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return "", false
	}
	lit, ok := exprStmt.Expression.(*ast.Literal)
	if !ok {
		return "", false
	}
	if _, isStr := lit.Value.(string); !isStr {
		return "", false
	}
	return lit.Raw, true
}

// parseStatementListItem dispatches the declaration forms that may only
// appear in StatementListItem position -- function, class, and lexical
// (let/const) declarations -- before falling through to parseStatement's
// ordered alternatives.
func (p *Parser) parseStatementListItem() ast.Statement {
	tok := p.sc.CurrentToken()
	switch {
	case tok.Is("function"):
		return p.parseFunctionDeclaration()
	case tok.Is("class"):
		return p.parseClassDeclaration()
	case tok.Is("const"):
		return p.parseLexicalDeclaration("const")
	case tok.Is("let") && p.letStartsDeclaration():
		return p.parseLexicalDeclaration("let")
	default:
		return p.parseStatement()
	}
}

// letStartsDeclaration resolves the `let` contextual keyword: it begins a
// lexical declaration only when followed by a binding target (identifier,
// `[`, or `{`); otherwise `let` is just an ordinary identifier.
func (p *Parser) letStartsDeclaration() bool {
	next := p.sc.PeekToken(1)
	return next.Type == token.Identifier || next.Is("[") || next.Is("{")
}
