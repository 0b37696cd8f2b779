package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseForStatement disambiguates the for-statement head: after `for (`,
// try a var/let/const binding first; a single binding with no initializer
// followed by `in`/`of` bifurcates into ForInStatement/ForOfStatement,
// otherwise parsing continues C-style. Absent a declaration keyword, an
// expression is parsed under AllowIn=false so a bare `in` can be
// recognized as the for-in keyword rather than the binary operator; that
// expression is re-interpreted as a pattern via the expression-to-pattern
// converter if `in`/`of` follows.
func (p *Parser) parseForStatement() ast.Statement {
	start := p.start()
	p.expect("for")
	p.expect("(")

	switch {
	case p.sc.CurrentToken().IsOneOf("var", "let", "const") &&
		(!p.sc.CurrentToken().Is("let") || p.letStartsDeclaration()):
		return p.parseForWithDeclaration(start)
	case p.sc.CurrentToken().Is(";"):
		return p.parseForCStyle(start, nil)
	default:
		return p.parseForWithExpression(start)
	}
}

func (p *Parser) parseForWithDeclaration(start token.Position) ast.Statement {
	kindStart := p.start()
	kind := p.sc.ConsumeToken().Value
	declStart := p.sc.Position()
	first := ast.NewVariableDeclarator(p.parseBindingTarget(), nil)

	if p.sc.CurrentToken().IsOneOf("in", "of") {
		declEnd := p.sc.PrevEnd()
		opTok := p.sc.ConsumeToken()
		vd := ast.NewVariableDeclaration(kind)
		vd.Declarations = []*ast.VariableDeclarator{finishAt(first, declStart, declEnd)}
		finishAt(vd, kindStart, declEnd)
		right := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
		p.expect(")")
		body := p.parseStatement()
		return p.buildForInOf(opTok.Value, start, vd, right, body)
	}

	if _, ok := p.sc.Consume("="); ok {
		first.Init = withContext(p, override{allowIn: boolp(false)}, p.parseAssignmentExpression)
	}
	finish(p, first, declStart)
	decls := []*ast.VariableDeclarator{first}
	for {
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
		decls = append(decls, p.parseVariableDeclarator())
	}
	vd := ast.NewVariableDeclaration(kind)
	vd.Declarations = decls
	finish(p, vd, kindStart)
	return p.parseForCStyle(start, vd)
}

func (p *Parser) parseForWithExpression(start token.Position) ast.Statement {
	expr := withContext(p, override{allowIn: boolp(false)}, p.parseExpression)

	if p.sc.CurrentToken().IsOneOf("in", "of") {
		opTok := p.sc.ConsumeToken()
		left := p.exprToPattern(expr)
		right := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
		p.expect(")")
		body := p.parseStatement()
		return p.buildForInOf(opTok.Value, start, left, right, body)
	}

	return p.parseForCStyle(start, expr)
}

func (p *Parser) buildForInOf(op string, start token.Position, left ast.Node, right ast.Expression, body ast.Statement) ast.Statement {
	if op == "in" {
		node := ast.NewForInStatement()
		node.Left = left
		node.Right = right
		node.Body = body
		return finish(p, node, start)
	}
	node := ast.NewForOfStatement()
	node.Left = left
	node.Right = right
	node.Body = body
	return finish(p, node, start)
}

// parseForCStyle parses the remainder of a C-style for header --
// `; test? ; update? )` -- and the loop body, given the already-parsed
// init clause (nil, an Expression, or a *ast.VariableDeclaration).
func (p *Parser) parseForCStyle(start token.Position, init ast.Node) *ast.ForStatement {
	p.expect(";")
	node := ast.NewForStatement()
	node.Init = init

	if !p.sc.CurrentToken().Is(";") {
		node.Test = withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	}
	p.expect(";")

	if !p.sc.CurrentToken().Is(")") {
		node.Update = withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	}
	p.expect(")")

	node.Body = p.parseStatement()
	return finish(p, node, start)
}
