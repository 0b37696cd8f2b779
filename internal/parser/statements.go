package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseStatement tries the statement alternatives in a fixed order:
// block, variable, empty, if, breakable (do/while/for/switch), continue,
// break, return, with, throw, try, debugger, labelled, expression --
// labelled must precede expression to intercept `ident :`.
func (p *Parser) parseStatement() ast.Statement {
	tok := p.sc.CurrentToken()
	switch {
	case tok.Is("{"):
		return p.parseBlockStatement()
	case tok.Is("var"):
		return p.parseVarStatement()
	case tok.Is(";"):
		return p.parseEmptyStatement()
	case tok.Is("if"):
		return p.parseIfStatement()
	case tok.Is("do"):
		return p.parseDoWhileStatement()
	case tok.Is("while"):
		return p.parseWhileStatement()
	case tok.Is("for"):
		return p.parseForStatement()
	case tok.Is("switch"):
		return p.parseSwitchStatement()
	case tok.Is("continue"):
		return p.parseContinueStatement()
	case tok.Is("break"):
		return p.parseBreakStatement()
	case tok.Is("return"):
		return p.parseReturnStatement()
	case tok.Is("with"):
		return p.parseWithStatement()
	case tok.Is("throw"):
		return p.parseThrowStatement()
	case tok.Is("try"):
		return p.parseTryStatement()
	case tok.Is("debugger"):
		return p.parseDebuggerStatement()
	default:
		if tok.Type == token.Identifier && p.sc.PeekToken(1).Is(":") {
			return p.parseLabeledStatement()
		}
		return p.parseExpressionStatement()
	}
}

// assertEndOfStatement is the ASI helper: an explicit `;`, an immediate
// `}`, the end of input, or a preceding line terminator all satisfy it
// for ASI-eligible productions.
func (p *Parser) assertEndOfStatement() {
	if _, ok := p.sc.Consume(";"); ok {
		return
	}
	if p.atRBrace() || p.atEOF() || p.sc.CurrentToken().NewlineBefore {
		return
	}
	p.fatalf("expected ; but found %s", p.sc.CurrentToken())
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.start()
	p.expect("{")
	body := p.parseStatementList(false, p.atRBrace)
	p.expect("}")
	blk := ast.NewBlockStatement()
	blk.Body = body
	return finish(p, blk, start)
}

func (p *Parser) parseVarStatement() *ast.VariableDeclaration {
	start := p.start()
	p.expect("var")
	decls := p.parseVariableDeclaratorList()
	p.assertEndOfStatement()
	vd := ast.NewVariableDeclaration("var")
	vd.Declarations = decls
	return finish(p, vd, start)
}

func (p *Parser) parseLexicalDeclaration(kind string) *ast.VariableDeclaration {
	start := p.start()
	p.expect(kind)
	decls := p.parseVariableDeclaratorList()
	p.assertEndOfStatement()
	vd := ast.NewVariableDeclaration(kind)
	vd.Declarations = decls
	return finish(p, vd, start)
}

func (p *Parser) parseVariableDeclaratorList() []*ast.VariableDeclarator {
	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	return decls
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	start := p.start()
	id := p.parseBindingTarget()
	var init ast.Expression
	if _, ok := p.sc.Consume("="); ok {
		init = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
	}
	d := ast.NewVariableDeclarator(id, init)
	return finish(p, d, start)
}

func (p *Parser) parseEmptyStatement() *ast.EmptyStatement {
	start := p.start()
	p.expect(";")
	return finish(p, ast.NewEmptyStatement(), start)
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	start := p.start()
	p.expect("if")
	p.expect("(")
	test := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.expect(")")
	consequent := p.parseStatement()
	node := ast.NewIfStatement()
	node.Test = test
	node.Consequent = consequent
	if _, ok := p.sc.Consume("else"); ok {
		node.Alternate = p.parseStatement()
	}
	return finish(p, node, start)
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	start := p.start()
	p.expect("do")
	body := p.parseStatement()
	p.expect("while")
	p.expect("(")
	test := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.expect(")")
	p.sc.Consume(";") // optional trailing semicolon, ASI-exempt for do-while
	node := ast.NewDoWhileStatement()
	node.Body = body
	node.Test = test
	return finish(p, node, start)
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	start := p.start()
	p.expect("while")
	p.expect("(")
	test := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.expect(")")
	body := p.parseStatement()
	node := ast.NewWhileStatement()
	node.Test = test
	node.Body = body
	return finish(p, node, start)
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	start := p.start()
	p.expect("continue")
	node := ast.NewContinueStatement()
	if p.sc.NoLineTerminators() && p.sc.CurrentToken().Type == token.Identifier {
		node.Label = p.parseBindingIdentifier()
	}
	p.assertEndOfStatement()
	return finish(p, node, start)
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	start := p.start()
	p.expect("break")
	node := ast.NewBreakStatement()
	if p.sc.NoLineTerminators() && p.sc.CurrentToken().Type == token.Identifier {
		node.Label = p.parseBindingIdentifier()
	}
	p.assertEndOfStatement()
	return finish(p, node, start)
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	if !p.ctx.AllowReturn {
		p.fatalf("return statement outside of function")
	}
	start := p.start()
	p.expect("return")
	node := ast.NewReturnStatement()
	if p.sc.NoLineTerminators() && !p.sc.CurrentToken().Is(";") && !p.atRBrace() && !p.atEOF() {
		node.Argument = withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	}
	p.assertEndOfStatement()
	return finish(p, node, start)
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	start := p.start()
	p.expect("with")
	p.expect("(")
	object := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.expect(")")
	body := p.parseStatement()
	node := ast.NewWithStatement()
	node.Object = object
	node.Body = body
	// with is accepted even in strict mode.
	return finish(p, node, start)
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	start := p.start()
	p.expect("throw")
	if p.sc.CurrentToken().NewlineBefore {
		p.fatalf("illegal newline after throw")
	}
	argument := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.assertEndOfStatement()
	node := ast.NewThrowStatement()
	node.Argument = argument
	return finish(p, node, start)
}

// parseTryStatement rejects a `try { }` with neither `catch` nor
// `finally`: it falls through to the fatal-error branch below instead of
// being accepted as a degenerate no-op.
func (p *Parser) parseTryStatement() *ast.TryStatement {
	start := p.start()
	p.expect("try")
	block := p.parseBlockStatement()
	node := ast.NewTryStatement()
	node.Block = block

	if p.sc.CurrentToken().Is("catch") {
		handlerStart := p.start()
		p.sc.ConsumeToken()
		handler := ast.NewCatchClause()
		if _, ok := p.sc.Consume("("); ok {
			handler.Param = p.parseBindingTarget()
			p.expect(")")
		}
		handler.Body = p.parseBlockStatement()
		node.Handler = finish(p, handler, handlerStart)
	}

	if _, ok := p.sc.Consume("finally"); ok {
		node.Finalizer = p.parseBlockStatement()
	}

	if node.Handler == nil && node.Finalizer == nil {
		p.fatalf("missing catch or finally after try block")
	}

	return finish(p, node, start)
}

func (p *Parser) parseDebuggerStatement() *ast.DebuggerStatement {
	start := p.start()
	p.expect("debugger")
	p.assertEndOfStatement()
	return finish(p, ast.NewDebuggerStatement(), start)
}

func (p *Parser) parseLabeledStatement() *ast.LabeledStatement {
	start := p.start()
	label := p.parseBindingIdentifier()
	p.expect(":")
	var body ast.Statement
	if p.sc.CurrentToken().Is("function") {
		p.checkStrictLabelledFunction(p.sc.Position())
		body = p.parseFunctionDeclaration()
	} else {
		body = p.parseStatement()
	}
	node := ast.NewLabeledStatement()
	node.Label = label
	node.Body = body
	return finish(p, node, start)
}

// parseExpressionStatement enforces the lookahead restriction: the first
// token of an expression statement must not be `{`, `function`, `class`,
// or the 2-token sequence `let [` (those are all claimed by other
// productions earlier in parseStatement/parseStatementListItem, so
// reaching here with one of them is a bug rather than a recoverable
// grammar alternative).
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	if tok := p.sc.CurrentToken(); tok.IsOneOf("{", "function", "class") || (tok.Is("let") && p.sc.IsBefore("let", "[")) {
		p.fatalf("unexpected token %s at the start of an expression statement", tok)
	}
	start := p.start()
	expr := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.assertEndOfStatement()
	return finish(p, ast.NewExpressionStatement(expr), start)
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	start := p.start()
	p.expect("switch")
	p.expect("(")
	discriminant := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.expect(")")
	p.expect("{")

	node := ast.NewSwitchStatement()
	node.Discriminant = discriminant
	sawDefault := false

	for !p.atRBrace() && !p.atEOF() {
		caseStart := p.start()
		c := ast.NewSwitchCase(nil)
		if _, ok := p.sc.Consume("default"); ok {
			if sawDefault {
				diagnostics.Panic(diagnostics.New(diagnostics.MultipleDefaultClause, caseStart))
			}
			sawDefault = true
		} else {
			p.expect("case")
			c.Test = withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
		}
		p.expect(":")
		for !p.sc.CurrentToken().IsOneOf("case", "default", "}") && !p.atEOF() {
			c.Consequent = append(c.Consequent, p.parseStatementListItem())
		}
		node.Cases = append(node.Cases, finish(p, c, caseStart))
	}

	p.expect("}")
	return finish(p, node, start)
}
