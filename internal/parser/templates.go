package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseTemplateLiteral drives the scanner's incremental template
// re-lexing: CurrentToken is already a Template
// token when this is called (either the initial backtick-led segment, or a
// continuation segment the previous call to this function produced). Each
// non-tail segment is followed by a `${` substitution expression parsed
// under allowIn=true; once that expression's closing `}` is reached as
// CurrentToken, LexTemplateContinuation re-lexes the next segment in place
// of it (the `}` was already consumed as an ordinary punctuator by the raw
// lexer, so it must not be separately Consume'd here) and the loop
// continues until a Tail segment is produced.
func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	start := p.start()
	node := ast.NewTemplateLiteral()

	for {
		segStart := p.sc.CurrentToken().Range.Start
		seg := p.sc.CurrentToken()
		if seg.Type != token.Template {
			p.fatalf("expected template segment but found %s", seg)
		}
		p.sc.ConsumeToken()
		p.checkStrictOctalLiteral(seg)
		node.Quasis = append(node.Quasis, finishAt(ast.NewTemplateElement(seg.Value, seg.Raw, seg.Tail), segStart, p.sc.PrevEnd()))

		if seg.Tail {
			break
		}

		node.Expressions = append(node.Expressions, withContext(p, override{allowIn: boolp(true)}, p.parseExpression))

		if !p.sc.CurrentToken().Is("}") {
			p.fatalf("expected '}' to close template substitution but found %s", p.sc.CurrentToken())
		}
		p.sc.LexTemplateContinuation()
	}

	return finish(p, node, start)
}
