package parser

import (
	"strconv"
	"strings"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseLeftHandSideExpression implements the member/call/new
// composition as a single suffix loop with a pending-`new`-count mechanism:
// every leading `new` (not immediately followed by `.`, which signals
// `new.target` instead) is consumed and counted before anything else is
// parsed, so that e.g. `new new f()()` resolves innermost-first -- the
// primary expression and its member chain bind to the last `new` consumed,
// that NewExpression becomes the callee the next `new` out wraps, and only
// after every pending `new` is discharged does the final, unrestricted
// call/member/tagged-template suffix loop run.
func (p *Parser) parseLeftHandSideExpression() ast.Expression {
	var pending []token.Position
	for p.sc.CurrentToken().Is("new") && !p.sc.PeekToken(1).Is(".") {
		pending = append(pending, p.start())
		p.sc.ConsumeToken()
	}

	var expr ast.Expression
	switch {
	case p.sc.CurrentToken().Is("new"):
		expr = p.parseMetaProperty()
	case p.sc.CurrentToken().Is("super"):
		expr = p.parseSuperExpression()
	default:
		expr = p.parsePrimaryExpression()
	}

	outerStart := expr.GetLoc().Start
	if len(pending) > 0 {
		outerStart = pending[0]
	}

	for i := len(pending) - 1; i >= 0; i-- {
		expr = p.parseSuffixChain(expr, pending[i], false)
		var args []ast.Expression
		if p.sc.CurrentToken().Is("(") {
			args = p.parseArguments()
		}
		node := ast.NewNewExpression()
		node.Callee = expr
		node.Arguments = args
		expr = finishAt(node, pending[i], p.sc.PrevEnd())
	}

	return p.parseSuffixChain(expr, outerStart, true)
}

// parseSuffixChain applies `.prop`, `[expr]`, tagged-template, and
// (allowCall) `(arguments)` suffixes left to right until none match.
func (p *Parser) parseSuffixChain(expr ast.Expression, start token.Position, allowCall bool) ast.Expression {
	for {
		switch {
		case p.sc.CurrentToken().Is("."):
			p.sc.ConsumeToken()
			prop := p.parseIdentifierLike(allowAll)
			m := ast.NewMemberExpression()
			m.Object = expr
			m.Property = prop
			expr = finish(p, m, start)

		case p.sc.CurrentToken().Is("["):
			p.sc.ConsumeToken()
			prop := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
			p.expect("]")
			m := ast.NewMemberExpression()
			m.Object = expr
			m.Property = prop
			m.Computed = true
			expr = finish(p, m, start)

		case p.sc.CurrentToken().Type == token.Template:
			tmpl := p.parseTemplateLiteral()
			tagged := ast.NewTaggedTemplateExpression()
			tagged.Tag = expr
			tagged.Quasi = tmpl
			expr = finish(p, tagged, start)

		case allowCall && p.sc.CurrentToken().Is("("):
			args := p.parseArguments()
			c := ast.NewCallExpression()
			c.Callee = expr
			c.Arguments = args
			expr = finish(p, c, start)

		default:
			return expr
		}
	}
}

// parseMetaProperty parses the sole ES2015 meta-property, `new.target`.
// Reached only when the leading-`new` loop of parseLeftHandSideExpression
// stopped right before a `new` immediately followed by `.`.
func (p *Parser) parseMetaProperty() *ast.MetaProperty {
	start := p.start()
	metaStart := start
	p.expect("new")
	metaEnd := p.sc.PrevEnd()

	p.expect(".")
	propStart := p.sc.Position()
	propTok := p.sc.CurrentToken()
	if propTok.Type != token.Identifier || propTok.Value != "target" {
		p.fatalf("expected 'target' after 'new.'")
	}
	p.sc.ConsumeToken()

	node := ast.NewMetaProperty()
	node.Meta = finishAt(ast.NewIdentifier("new"), metaStart, metaEnd)
	node.Property = finishAt(ast.NewIdentifier("target"), propStart, p.sc.PrevEnd())
	return finish(p, node, start)
}

// parseSuperExpression parses the bare `super` keyword; SuperProperty
// (`super.x`/`super[x]`) and SuperCall (`super(...)`) both fall out of the
// ordinary suffix chain once Super itself is the chain's base expression.
func (p *Parser) parseSuperExpression() ast.Expression {
	start := p.start()
	p.expect("super")
	return finish(p, ast.NewSuper(), start)
}

// parseArguments parses `( argumentList )`, where each argument may be a
// SpreadElement.
func (p *Parser) parseArguments() []ast.Expression {
	p.expect("(")
	var args []ast.Expression
	for !p.sc.CurrentToken().Is(")") {
		if p.sc.CurrentToken().Is("...") {
			spreadStart := p.start()
			p.sc.ConsumeToken()
			arg := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			args = append(args, finish(p, ast.NewSpreadElement(arg), spreadStart))
		} else {
			args = append(args, withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression))
		}
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect(")")
	return args
}

// parsePrimaryExpression dispatches the innermost alternatives:
// this, identifier references, literals (including the `/`-is-regex
// re-lex), array/object literals, function/class expressions, template
// literals, and the parenthesized-expression fallback of the cover grammar
// already tried (and rejected, for this call) by tryParseArrowFunctionCover.
func (p *Parser) parsePrimaryExpression() ast.Expression {
	tok := p.sc.CurrentToken()

	if tok.IsOneOf("/", "/=") {
		return p.parseRegExpLiteral()
	}

	switch {
	case tok.Is("this"):
		start := p.start()
		p.sc.ConsumeToken()
		return finish(p, ast.NewThisExpression(), start)

	case tok.Type == token.Identifier:
		return p.parseIdentifierLike(mixed)

	case tok.Type == token.NumericLiteral:
		start := p.start()
		p.checkStrictOctalLiteral(tok)
		p.sc.ConsumeToken()
		return finish(p, ast.NewLiteral(parseNumericValue(tok), tok.Raw), start)

	case tok.Type == token.StringLiteral:
		start := p.start()
		p.checkStrictOctalLiteral(tok)
		p.sc.ConsumeToken()
		return finish(p, ast.NewLiteral(tok.Value, tok.Raw), start)

	case tok.Type == token.BooleanLiteral:
		start := p.start()
		p.sc.ConsumeToken()
		return finish(p, ast.NewLiteral(tok.Value == "true", tok.Raw), start)

	case tok.Type == token.NullLiteral:
		start := p.start()
		p.sc.ConsumeToken()
		return finish(p, ast.NewLiteral(nil, tok.Raw), start)

	case tok.Type == token.Template:
		return p.parseTemplateLiteral()

	case tok.Is("["):
		return p.parseArrayLiteral()

	case tok.Is("{"):
		return p.parseObjectLiteral()

	case tok.Is("function"):
		return p.parseFunctionExpression()

	case tok.Is("class"):
		return p.parseClassExpression()

	case tok.Is("("):
		return p.parseParenthesizedExpression()

	default:
		p.fatalf("unexpected token %s", tok)
		return nil
	}
}

func (p *Parser) parseRegExpLiteral() *ast.RegExpLiteral {
	start := p.start()
	tok := p.sc.ReconsumeCurrentTokenAsRegexp()
	p.sc.ConsumeToken()
	pattern, flags := splitRegex(tok.Raw)
	return finish(p, ast.NewRegExpLiteral(pattern, flags, tok.Raw), start)
}

// splitRegex separates a /pattern/flags literal's raw text at its closing
// delimiter, tracking bracket-class nesting the same way lexRegExp does so
// an unescaped `/` inside a character class isn't mistaken for the close.
func splitRegex(raw string) (pattern, flags string) {
	inClass := false
	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return raw[1:i], raw[i+1:]
			}
		}
	}
	return raw[1:], ""
}

// parseNumericValue cooks a NumericLiteral token's raw text into its Go
// float64 value, covering hex/octal/binary prefixes and the legacy octal
// form the scanner flags via tok.Octal.
func parseNumericValue(tok token.Token) float64 {
	raw := tok.Raw
	switch {
	case strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X"):
		n, _ := strconv.ParseUint(raw[2:], 16, 64)
		return float64(n)
	case strings.HasPrefix(raw, "0o") || strings.HasPrefix(raw, "0O"):
		n, _ := strconv.ParseUint(raw[2:], 8, 64)
		return float64(n)
	case strings.HasPrefix(raw, "0b") || strings.HasPrefix(raw, "0B"):
		n, _ := strconv.ParseUint(raw[2:], 2, 64)
		return float64(n)
	case tok.Octal:
		n, _ := strconv.ParseUint(raw[1:], 8, 64)
		return float64(n)
	default:
		f, _ := strconv.ParseFloat(raw, 64)
		return f
	}
}

func (p *Parser) parseParenthesizedExpression() *ast.ParenthesizedExpression {
	start := p.start()
	p.expect("(")
	expr := withContext(p, override{allowIn: boolp(true)}, p.parseExpression)
	p.expect(")")
	return finish(p, ast.NewParenthesizedExpression(expr), start)
}

func (p *Parser) parseArrayLiteral() *ast.ArrayExpression {
	start := p.start()
	p.expect("[")
	node := ast.NewArrayExpression()

	for !p.sc.CurrentToken().Is("]") {
		if _, ok := p.sc.Consume(","); ok {
			node.Elements = append(node.Elements, nil)
			continue
		}
		if p.sc.CurrentToken().Is("...") {
			spreadStart := p.start()
			p.sc.ConsumeToken()
			arg := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			node.Elements = append(node.Elements, finish(p, ast.NewSpreadElement(arg), spreadStart))
		} else {
			node.Elements = append(node.Elements, withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression))
		}
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect("]")
	return finish(p, node, start)
}

func (p *Parser) parseObjectLiteral() *ast.ObjectExpression {
	start := p.start()
	p.expect("{")
	node := ast.NewObjectExpression()

	for !p.sc.CurrentToken().Is("}") {
		node.Properties = append(node.Properties, p.parseObjectProperty())
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect("}")
	return finish(p, node, start)
}

// parseObjectProperty implements the PropertyDefinition alternatives: a
// generator method, a get/set accessor (resolved by checking for a
// following `(` before committing to the contextual-keyword reading), an
// ordinary method shorthand, a computed or plain `key: value`, or a bare
// shorthand
// (possibly carrying a CoverInitializedName default, only meaningful once
// the enclosing ObjectExpression is reinterpreted as a pattern).
func (p *Parser) parseObjectProperty() *ast.Property {
	start := p.start()
	prop := ast.NewProperty()

	if _, ok := p.sc.Consume("*"); ok {
		prop.Method = true
		prop.Computed = p.parsePropertyKeyInto(prop)
		prop.Value = p.parseMethodValue(true)
		return finish(p, prop, start)
	}

	if (p.sc.CurrentToken().Is("get") || p.sc.CurrentToken().Is("set")) &&
		!p.sc.PeekToken(1).IsOneOf(",", ":", "}", "(") {
		prop.Kind = p.sc.ConsumeToken().Value
		prop.Computed = p.parsePropertyKeyInto(prop)
		prop.Value = p.parseMethodValue(false)
		return finish(p, prop, start)
	}

	prop.Computed = p.parsePropertyKeyInto(prop)

	switch {
	case p.sc.CurrentToken().Is("("):
		prop.Method = true
		prop.Value = p.parseMethodValue(false)

	default:
		if _, ok := p.sc.Consume(":"); ok {
			prop.Value = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			break
		}
		prop.Shorthand = true
		id, ok := prop.Key.(*ast.Identifier)
		if !ok {
			p.fatalf("expected shorthand property identifier")
		}
		if _, ok := p.sc.Consume("="); ok {
			def := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			prop.Value = finish(p, ast.NewAssignmentExpression("=", id, def), start)
		} else {
			prop.Value = id
		}
	}

	return finish(p, prop, start)
}

// parsePropertyKeyInto parses either a computed `[expr]` key or a plain
// PropertyKey into prop.Key, reporting whether it was computed -- shared by
// every PropertyDefinition alternative so generator and get/set methods can
// take computed keys (`*[Symbol.iterator]() {}`, `get [x]() {}`) the same as
// plain methods do.
func (p *Parser) parsePropertyKeyInto(prop *ast.Property) bool {
	if _, ok := p.sc.Consume("["); ok {
		prop.Key = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
		p.expect("]")
		return true
	}
	prop.Key = p.parsePropertyKey()
	return false
}

// parsePropertyKey parses a PropertyName: a string or numeric literal, or
// any name accepted by the allowAll identifier mode.
func (p *Parser) parsePropertyKey() ast.Expression {
	tok := p.sc.CurrentToken()
	switch tok.Type {
	case token.StringLiteral:
		start := p.start()
		p.sc.ConsumeToken()
		return finish(p, ast.NewLiteral(tok.Value, tok.Raw), start)
	case token.NumericLiteral:
		start := p.start()
		p.sc.ConsumeToken()
		return finish(p, ast.NewLiteral(parseNumericValue(tok), tok.Raw), start)
	default:
		return p.parseIdentifierLike(allowAll)
	}
}

// parseMethodValue parses a method's `(params) body` as a FunctionExpression
// sharing the production functions.go uses for ordinary function bodies.
func (p *Parser) parseMethodValue(generator bool) *ast.FunctionExpression {
	start := p.start()
	fn := ast.NewFunctionExpression()
	fn.Generator = generator
	fn.Params = p.parseFormalParameterList()
	fn.Body = withContext(p, override{allowYield: boolp(generator), allowReturn: boolp(true)}, p.parseFunctionBody)
	return finish(p, fn, start)
}
