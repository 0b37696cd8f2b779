package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseImportDeclaration implements the import forms: a bare
// `import "mod";` module-for-side-effects, an optional default binding,
// and either a namespace import (`* as name`) or a named-imports list,
// terminated by `from "mod"`.
func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	start := p.start()
	p.expect("import")
	node := ast.NewImportDeclaration()

	if p.sc.CurrentToken().Type == token.StringLiteral {
		node.Source = p.parseStringLiteral()
		p.assertEndOfStatement()
		return finish(p, node, start)
	}

	if p.sc.CurrentToken().Type == token.Identifier {
		defStart := p.start()
		local := p.parseIdentifierLike(allowNothing)
		node.Specifiers = append(node.Specifiers, finish(p, ast.NewImportDefaultSpecifier(local), defStart))
		if _, ok := p.sc.Consume(","); !ok {
			p.expect("from")
			node.Source = p.parseStringLiteral()
			p.assertEndOfStatement()
			return finish(p, node, start)
		}
	}

	switch {
	case p.sc.CurrentToken().Is("*"):
		nsStart := p.start()
		p.sc.ConsumeToken()
		p.expect("as")
		local := p.parseIdentifierLike(allowNothing)
		node.Specifiers = append(node.Specifiers, finish(p, ast.NewImportNamespaceSpecifier(local), nsStart))
	case p.sc.CurrentToken().Is("{"):
		p.parseNamedImports(node)
	default:
		p.fatalf("expected import specifier but found %s", p.sc.CurrentToken())
	}

	p.expect("from")
	node.Source = p.parseStringLiteral()
	p.assertEndOfStatement()
	return finish(p, node, start)
}

func (p *Parser) parseNamedImports(node *ast.ImportDeclaration) {
	p.expect("{")
	for !p.sc.CurrentToken().Is("}") {
		specStart := p.start()
		imported := p.parseIdentifierLike(allowAll)
		local := imported
		if _, ok := p.sc.Consume("as"); ok {
			local = p.parseIdentifierLike(allowNothing)
		}
		node.Specifiers = append(node.Specifiers, finish(p, ast.NewImportSpecifier(imported, local), specStart))
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect("}")
}

// parseExportDeclaration implements the export forms:
// `export * from "mod"`, `export default ...`, `export { ... } (from
// "mod")?`, and `export` directly in front of a function/class/variable
// declaration.
func (p *Parser) parseExportDeclaration() ast.Statement {
	start := p.start()
	p.expect("export")

	if _, ok := p.sc.Consume("*"); ok {
		node := ast.NewExportAllDeclaration()
		p.expect("from")
		node.Source = p.parseStringLiteral()
		p.assertEndOfStatement()
		return finish(p, node, start)
	}

	if _, ok := p.sc.Consume("default"); ok {
		node := ast.NewExportDefaultDeclaration()
		switch {
		case p.sc.CurrentToken().Is("function"):
			node.Declaration = p.parseFunctionDeclarationNamed(false)
		case p.sc.CurrentToken().Is("class"):
			node.Declaration = p.parseClassDeclarationNamed(false)
		default:
			node.Declaration = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			p.assertEndOfStatement()
		}
		return finish(p, node, start)
	}

	if p.sc.CurrentToken().Is("{") {
		node := ast.NewExportNamedDeclaration()
		p.parseExportClause(node)
		if _, ok := p.sc.Consume("from"); ok {
			node.Source = p.parseStringLiteral()
		}
		p.assertEndOfStatement()
		return finish(p, node, start)
	}

	node := ast.NewExportNamedDeclaration()
	switch {
	case p.sc.CurrentToken().Is("function"):
		node.Declaration = p.parseFunctionDeclaration()
	case p.sc.CurrentToken().Is("class"):
		node.Declaration = p.parseClassDeclaration()
	case p.sc.CurrentToken().Is("const"):
		node.Declaration = p.parseLexicalDeclaration("const")
	case p.sc.CurrentToken().Is("let") && p.letStartsDeclaration():
		node.Declaration = p.parseLexicalDeclaration("let")
	case p.sc.CurrentToken().Is("var"):
		node.Declaration = p.parseVarStatement()
	default:
		p.fatalf("expected a declaration after export but found %s", p.sc.CurrentToken())
	}
	return finish(p, node, start)
}

func (p *Parser) parseExportClause(node *ast.ExportNamedDeclaration) {
	p.expect("{")
	for !p.sc.CurrentToken().Is("}") {
		specStart := p.start()
		local := p.parseIdentifierLike(allowAll)
		exported := local
		if _, ok := p.sc.Consume("as"); ok {
			exported = p.parseIdentifierLike(allowAll)
		}
		node.Specifiers = append(node.Specifiers, finish(p, ast.NewExportSpecifier(local, exported), specStart))
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect("}")
}

func (p *Parser) parseStringLiteral() *ast.Literal {
	start := p.start()
	tok := p.sc.CurrentToken()
	if tok.Type != token.StringLiteral {
		p.fatalf("expected a string literal but found %s", tok)
	}
	p.sc.ConsumeToken()
	return finish(p, ast.NewLiteral(tok.Value, tok.Raw), start)
}
