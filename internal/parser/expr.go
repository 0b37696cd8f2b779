package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/config"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseExpression is the comma-operator production: one or more
// AssignmentExpressions, folded into a SequenceExpression when more than
// one is present.
func (p *Parser) parseExpression() ast.Expression {
	start := p.start()
	first := p.parseAssignmentExpression()
	if !p.sc.CurrentToken().Is(",") {
		return first
	}
	seq := ast.NewSequenceExpression()
	seq.Expressions = append(seq.Expressions, first)
	for {
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
		seq.Expressions = append(seq.Expressions, p.parseAssignmentExpression())
	}
	return finish(p, seq, start)
}

// parseAssignmentExpression tries yield (when AllowYield), the
// arrow-function cover grammar, then a plain ConditionalExpression
// optionally followed by an assignment operator whose left side is
// re-interpreted through the expression-to-pattern converter when the
// operator is bare `=`.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	if p.ctx.AllowYield && p.sc.CurrentToken().Is("yield") {
		return p.parseYieldExpression()
	}

	if arrow, ok := p.tryParseArrowFunctionCover(); ok {
		return arrow
	}

	start := p.start()
	left := p.parseConditionalExpression()

	tok := p.sc.CurrentToken()
	if tok.Type == token.Punctuator && config.AssignmentOperators[tok.Value] {
		if !isValidAssignmentTarget(left) {
			p.fatalf("invalid assignment target")
		}
		op := p.sc.ConsumeToken().Value
		var target ast.Node = left
		if op == "=" {
			target = p.exprToPattern(left)
		}
		right := p.parseAssignmentExpression()
		return finish(p, ast.NewAssignmentExpression(op, target, right), start)
	}

	return left
}

// isValidAssignmentTarget reports whether expr could possibly be the left
// side of an assignment -- a simple reference, a member access, or (only
// meaningful for bare `=`) an array/object literal standing in for its
// destructuring-pattern cover. The parser does not reject a malformed
// pattern inside an accepted cover here; exprToPattern's shallow rewrite
// surfaces that failure instead.
func isValidAssignmentTarget(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.ArrayExpression, *ast.ObjectExpression:
		return true
	case *ast.ParenthesizedExpression:
		return isValidAssignmentTarget(e.Expression)
	default:
		return false
	}
}

// tryParseArrowFunctionCover resolves the `(params) => body` / `ident =>
// body` cover grammar: a bare identifier followed
// directly by `=>` is always an arrow head; otherwise, when the current
// token is `(`, the formal-parameter-list grammar is attempted speculatively
// and only committed to if it is immediately followed by `=>` on the same
// line. Any mismatch falls back to ordinary expression parsing -- including
// a parenthesized or sequence expression sharing the exact same `(...)`
// text.
func (p *Parser) tryParseArrowFunctionCover() (ast.Expression, bool) {
	if p.sc.CurrentToken().Type == token.Identifier && p.sc.PeekToken(1).Is("=>") && !p.sc.PeekToken(1).NewlineBefore {
		start := p.start()
		id := p.parseBindingIdentifier()
		return p.finishArrow(start, []ast.Pattern{id}), true
	}

	if !p.sc.CurrentToken().Is("(") {
		return nil, false
	}

	return tryParse(p, func() ast.Expression {
		start := p.start()
		params := p.parseFormalParameterList()
		if p.sc.CurrentToken().NewlineBefore || !p.sc.CurrentToken().Is("=>") {
			p.fatalf("not an arrow function head")
		}
		return p.finishArrow(start, params)
	})
}

// finishArrow consumes `=>` and the arrow body -- a BlockStatement for a
// braced body, otherwise a bare AssignmentExpression concise body. Arrow
// functions are never generators, so AllowYield is cleared for the body
// regardless of the enclosing context.
func (p *Parser) finishArrow(start token.Position, params []ast.Pattern) *ast.ArrowFunctionExpression {
	p.expect("=>")
	node := ast.NewArrowFunctionExpression()
	node.Params = params

	if p.sc.CurrentToken().Is("{") {
		node.Body = withContext(p, override{allowYield: boolp(false), allowReturn: boolp(true)}, func() ast.Node {
			return p.parseFunctionBody()
		})
	} else {
		node.ExpressionBody = true
		node.Body = withContext(p, override{allowIn: boolp(true), allowYield: boolp(false)}, func() ast.Node {
			return p.parseAssignmentExpression()
		})
	}

	return finish(p, node, start)
}

// parseYieldExpression implements `yield`, `yield* AssignmentExpression`,
// and `yield [no LineTerminator here] AssignmentExpression?`. Delegate is
// only ever true together with a non-nil Argument.
func (p *Parser) parseYieldExpression() *ast.YieldExpression {
	start := p.start()
	p.expect("yield")
	node := ast.NewYieldExpression()

	if p.sc.NoLineTerminators() {
		if _, ok := p.sc.Consume("*"); ok {
			node.Delegate = true
			node.Argument = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			return finish(p, node, start)
		}
		if !p.atArgumentEnd() {
			node.Argument = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
		}
	}

	return finish(p, node, start)
}

// atArgumentEnd reports whether CurrentToken closes off yield's optional
// argument position without itself starting a new expression.
func (p *Parser) atArgumentEnd() bool {
	if p.atEOF() || p.atRBrace() {
		return true
	}
	return p.sc.CurrentToken().IsOneOf(")", "]", ",", ";", ":")
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	start := p.start()
	test := p.parseBinaryExpression()
	if _, ok := p.sc.Consume("?"); !ok {
		return test
	}
	node := ast.NewConditionalExpression()
	node.Test = test
	node.Consequent = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
	p.expect(":")
	node.Alternate = p.parseAssignmentExpression()
	return finish(p, node, start)
}

// parseBinaryExpression implements the precedence-climbing
// table by first collecting a flat, left-to-right sequence of operands
// and operators (no recursion per grade), then folding that sequence by
// descending config.BinaryGrade -- at each pass, every operator currently
// sharing the highest remaining grade is reduced against its immediate
// neighbours, left to right, before moving to the next lower grade. This
// produces the same left-associative tree a grade-by-grade recursive
// descent would, without one parse function per precedence level.
func (p *Parser) parseBinaryExpression() ast.Expression {
	operands := []ast.Expression{p.parseUnaryExpression()}
	var operators []string

	for {
		tok := p.sc.CurrentToken()
		if tok.Value == "in" && !p.ctx.AllowIn {
			break
		}
		if tok.Type != token.Punctuator && tok.Type != token.Keyword {
			break
		}
		if _, known := config.BinaryGrade[tok.Value]; !known {
			break
		}
		p.sc.ConsumeToken()
		operators = append(operators, tok.Value)
		operands = append(operands, p.parseUnaryExpression())
	}

	return foldBinary(operands, operators)
}

func foldBinary(operands []ast.Expression, operators []string) ast.Expression {
	for len(operators) > 0 {
		maxGrade := config.BinaryGrade[operators[0]]
		for _, op := range operators[1:] {
			if g := config.BinaryGrade[op]; g > maxGrade {
				maxGrade = g
			}
		}
		i := 0
		for i < len(operators) {
			if config.BinaryGrade[operators[i]] != maxGrade {
				i++
				continue
			}
			node := buildBinaryNode(operators[i], operands[i], operands[i+1])
			operands[i] = node
			operands = append(operands[:i+1], operands[i+2:]...)
			operators = append(operators[:i], operators[i+1:]...)
		}
	}
	return operands[0]
}

// buildBinaryNode chooses BinaryExpression vs LogicalExpression by
// config.LogicalGradeCutoff and stamps the new node's span
// from its operands directly, since it is built mid-fold rather than at
// the scanner's current position.
func buildBinaryNode(op string, left, right ast.Expression) ast.Expression {
	var node ast.Expression
	if config.BinaryGrade[op] < config.LogicalGradeCutoff {
		node = ast.NewLogicalExpression(op, left, right)
	} else {
		node = ast.NewBinaryExpression(op, left, right)
	}
	node.SetLoc(ast.Location{Start: left.GetLoc().Start, End: right.GetLoc().End})
	return node
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.sc.CurrentToken()

	if tok.IsOneOf("++", "--") {
		start := p.start()
		op := p.sc.ConsumeToken().Value
		arg := p.parseUnaryExpression()
		return finish(p, ast.NewUpdateExpression(op, true, arg), start)
	}

	if (tok.Type == token.Punctuator || tok.Type == token.Keyword) && config.UnaryOperators[tok.Value] {
		start := p.start()
		op := p.sc.ConsumeToken().Value
		arg := p.parseUnaryExpression()
		p.checkStrictDelete(op, arg)
		return finish(p, ast.NewUnaryExpression(op, arg), start)
	}

	return p.parsePostfixExpression()
}

// parsePostfixExpression applies a trailing ++/--, which, unlike the
// prefix form, requires no intervening line terminator.
func (p *Parser) parsePostfixExpression() ast.Expression {
	start := p.start()
	expr := p.parseLeftHandSideExpression()
	if p.sc.NoLineTerminators() && p.sc.CurrentToken().IsOneOf("++", "--") {
		op := p.sc.ConsumeToken().Value
		return finish(p, ast.NewUpdateExpression(op, false, expr), start)
	}
	return expr
}
