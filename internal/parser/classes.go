package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	return p.parseClassDeclarationNamed(true)
}

// parseClassDeclarationNamed parses a class declaration whose name may be
// omitted only in `export default class {}` position.
func (p *Parser) parseClassDeclarationNamed(requireId bool) *ast.ClassDeclaration {
	start := p.start()
	p.expect("class")
	node := ast.NewClassDeclaration()
	if requireId || p.sc.CurrentToken().Type == token.Identifier {
		node.Id = p.parseIdentifierLike(allowNothing)
	}
	if _, ok := p.sc.Consume("extends"); ok {
		node.SuperClass = p.parseLeftHandSideExpression()
	}
	node.Body = p.parseClassBody()
	return finish(p, node, start)
}

// parseClassExpression mirrors parseClassDeclaration but Id is optional,
// e.g. `const C = class extends Base { ... }`.
func (p *Parser) parseClassExpression() *ast.ClassExpression {
	start := p.start()
	p.expect("class")
	node := ast.NewClassExpression()
	if p.sc.CurrentToken().Type == token.Identifier {
		node.Id = p.parseIdentifierLike(allowNothing)
	}
	if _, ok := p.sc.Consume("extends"); ok {
		node.SuperClass = p.parseLeftHandSideExpression()
	}
	node.Body = p.parseClassBody()
	return finish(p, node, start)
}

// parseClassBody scopes the scanner's strict-mode flag on for its whole
// extent, regardless of the enclosing mode -- class bodies are always
// strict.
func (p *Parser) parseClassBody() *ast.ClassBody {
	return withStrictMode(p, true, func() *ast.ClassBody {
		start := p.start()
		p.expect("{")
		node := ast.NewClassBody()
		for !p.atRBrace() && !p.atEOF() {
			if _, ok := p.sc.Consume(";"); ok {
				continue
			}
			node.Body = append(node.Body, p.parseMethodDefinition())
		}
		p.expect("}")
		return finish(p, node, start)
	})
}

// parseMethodDefinition resolves the `static`/`get`/`set` contextual
// prefixes by one-token lookahead before committing to them: each is only
// consumed as a modifier when the token after it is not immediately `(`
// (otherwise it is the method's own name). A leading `*` always marks a
// generator. A plain Identifier key named
// `constructor` (non-static, non-computed, not already get/set/generator)
// names the constructor.
func (p *Parser) parseMethodDefinition() *ast.MethodDefinition {
	start := p.start()
	node := ast.NewMethodDefinition()
	node.Kind = "method"

	if p.sc.CurrentToken().Is("static") && !p.sc.PeekToken(1).Is("(") {
		node.Static = true
		p.sc.ConsumeToken()
	}

	generator := false
	if _, ok := p.sc.Consume("*"); ok {
		generator = true
	}

	if (p.sc.CurrentToken().Is("get") || p.sc.CurrentToken().Is("set")) && !p.sc.PeekToken(1).Is("(") {
		node.Kind = p.sc.ConsumeToken().Value
	}

	if _, ok := p.sc.Consume("["); ok {
		node.Computed = true
		node.Key = withContext(p, override{allowIn: boolp(true)}, p.parseAssignmentExpression)
		p.expect("]")
	} else {
		node.Key = p.parsePropertyKey()
	}

	if !node.Computed && node.Kind == "method" && !node.Static && !generator {
		if id, ok := node.Key.(*ast.Identifier); ok && id.Name == "constructor" {
			node.Kind = "constructor"
		}
	}

	node.Value = p.parseMethodValue(generator)
	return finish(p, node, start)
}
