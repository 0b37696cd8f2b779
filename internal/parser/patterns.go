package parser

import "github.com/funvibe/ecmaparse/internal/ast"

// toPattern converts node and requires the result to actually be a
// pattern, raising a SyntaxError (rather than crashing on a failed type
// assertion) for covers with no destructuring meaning, e.g. `[a + b] = x`.
func (p *Parser) toPattern(node ast.Node) ast.Pattern {
	pat, ok := p.exprToPattern(node).(ast.Pattern)
	if !ok {
		p.fatalf("invalid destructuring target")
	}
	return pat
}

// exprToPattern is the expression-to-pattern converter: a shallow
// structural rewrite of an already-parsed expression
// into the pattern shape the same source text would produce under the
// BindingPattern/AssignmentPattern grammar, used wherever the grammar can't
// tell which one it's looking at until after the fact -- for-in/of LHS and
// the left side of a bare `=` assignment. Node kinds with no destructuring
// meaning (CallExpression, BinaryExpression, ...) pass through unchanged;
// the caller is responsible for deciding whether the result is actually a
// valid pattern.
func (p *Parser) exprToPattern(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.ParenthesizedExpression:
		return p.exprToPattern(n.Expression)

	case *ast.Identifier, *ast.MemberExpression:
		return n

	case *ast.ArrayExpression:
		pat := ast.NewArrayPattern()
		pat.SetLoc(n.GetLoc())
		for _, el := range n.Elements {
			if el == nil {
				pat.Elements = append(pat.Elements, nil)
				continue
			}
			pat.Elements = append(pat.Elements, p.toPattern(el))
		}
		return pat

	case *ast.ObjectExpression:
		pat := ast.NewObjectPattern()
		pat.SetLoc(n.GetLoc())
		for _, prop := range n.Properties {
			ap := ast.NewAssignmentProperty()
			ap.SetLoc(prop.GetLoc())
			ap.Key = prop.Key
			ap.Computed = prop.Computed
			ap.Shorthand = prop.Shorthand
			ap.Value = p.toPattern(prop.Value)
			pat.Properties = append(pat.Properties, ap)
		}
		return pat

	case *ast.AssignmentExpression:
		// CoverInitializedName (`{a = 1}`) and a destructuring default
		// (`[a = 1]`) both arrive here as a plain AssignmentExpression,
		// since Property.Value is typed Expression and can't hold an
		// AssignmentPattern directly.
		left := p.toPattern(n.Left)
		ap := ast.NewAssignmentPattern(left, n.Right)
		ap.SetLoc(n.GetLoc())
		return ap

	case *ast.SpreadElement:
		rest := ast.NewRestElement(p.toPattern(n.Argument))
		rest.SetLoc(n.GetLoc())
		return rest

	default:
		return node
	}
}
