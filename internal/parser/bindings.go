package parser

import "github.com/funvibe/ecmaparse/internal/ast"

// parseBindingTarget parses a BindingIdentifier or a destructuring
// BindingPattern (ArrayPattern/ObjectPattern), the grammar ES2015 defines
// directly for declarator/parameter position -- as opposed to the
// expression→pattern conversion of patterns.go, which reinterprets an
// already-parsed expression (assignment LHS, for-in/of LHS) rather than
// parsing a pattern grammar from scratch.
func (p *Parser) parseBindingTarget() ast.Pattern {
	switch {
	case p.sc.CurrentToken().Is("["):
		return p.parseArrayBindingPattern()
	case p.sc.CurrentToken().Is("{"):
		return p.parseObjectBindingPattern()
	default:
		return p.parseBindingIdentifier()
	}
}

// parseBindingElement parses one BindingTarget with an optional `=
// default`.
func (p *Parser) parseBindingElement() ast.Pattern {
	target := p.parseBindingTarget()
	if _, ok := p.sc.Consume("="); ok {
		def := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
		return finishAt(ast.NewAssignmentPattern(target, def), target.GetLoc().Start, def.GetLoc().End)
	}
	return target
}

func (p *Parser) parseArrayBindingPattern() *ast.ArrayPattern {
	start := p.start()
	p.expect("[")
	pat := ast.NewArrayPattern()

	for !p.sc.CurrentToken().Is("]") {
		if _, ok := p.sc.Consume(","); ok {
			pat.Elements = append(pat.Elements, nil) // elision
			continue
		}
		if p.sc.CurrentToken().Is("...") {
			restStart := p.start()
			p.sc.ConsumeToken()
			pat.Elements = append(pat.Elements, finish(p, ast.NewRestElement(p.parseBindingTarget()), restStart))
			break // RestElement is forbidden anywhere but the final position
		}
		pat.Elements = append(pat.Elements, p.parseBindingElement())
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect("]")
	return finish(p, pat, start)
}

func (p *Parser) parseObjectBindingPattern() *ast.ObjectPattern {
	start := p.start()
	p.expect("{")
	pat := ast.NewObjectPattern()

	for !p.sc.CurrentToken().Is("}") {
		propStart := p.start()
		prop := ast.NewAssignmentProperty()
		if _, ok := p.sc.Consume("["); ok {
			prop.Computed = true
			prop.Key = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
			p.expect("]")
			p.expect(":")
			prop.Value = p.parseBindingElement()
		} else {
			keyTok := p.sc.CurrentToken()
			key := p.parseIdentifierLike(allowAll)
			prop.Key = key
			if _, ok := p.sc.Consume(":"); ok {
				prop.Value = p.parseBindingElement()
			} else {
				prop.Shorthand = true
				var value ast.Pattern = finishAt(ast.NewIdentifier(keyTok.Value), keyTok.Range.Start, keyTok.Range.End)
				if _, ok := p.sc.Consume("="); ok {
					def := withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
					value = finishAt(ast.NewAssignmentPattern(value, def), keyTok.Range.Start, def.GetLoc().End)
				}
				prop.Value = value
			}
		}
		pat.Properties = append(pat.Properties, finish(p, prop, propStart))
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect("}")
	return finish(p, pat, start)
}

// parseFormalParameterList parses `( params )`, whose final element may be
// a RestElement.
func (p *Parser) parseFormalParameterList() []ast.Pattern {
	p.expect("(")
	var params []ast.Pattern
	for !p.sc.CurrentToken().Is(")") {
		if p.sc.CurrentToken().Is("...") {
			restStart := p.start()
			p.sc.ConsumeToken()
			params = append(params, finish(p, ast.NewRestElement(p.parseBindingTarget()), restStart))
			break
		}
		params = append(params, p.parseBindingElement())
		if _, ok := p.sc.Consume(","); !ok {
			break
		}
	}
	p.expect(")")
	return params
}
