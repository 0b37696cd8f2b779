package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseFunctionDeclaration and parseFunctionExpression share the
// `function *? name? (params) body` grammar; only whether Id is required
// (declaration) or optional (expression) differs.

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	return p.parseFunctionDeclarationNamed(true)
}

// parseFunctionDeclarationNamed parses a function declaration whose name
// may be omitted only in `export default function () {}` position.
func (p *Parser) parseFunctionDeclarationNamed(requireId bool) *ast.FunctionDeclaration {
	start := p.start()
	p.expect("function")
	generator := false
	if _, ok := p.sc.Consume("*"); ok {
		generator = true
	}
	node := ast.NewFunctionDeclaration()
	node.Generator = generator
	if requireId || p.sc.CurrentToken().Type == token.Identifier {
		node.Id = p.parseBindingIdentifier()
	}
	node.Params = p.parseFormalParameterList()
	node.Body = withContext(p, override{allowYield: boolp(generator), allowReturn: boolp(true)}, p.parseFunctionBody)
	return finish(p, node, start)
}

func (p *Parser) parseFunctionExpression() *ast.FunctionExpression {
	start := p.start()
	p.expect("function")
	generator := false
	if _, ok := p.sc.Consume("*"); ok {
		generator = true
	}
	node := ast.NewFunctionExpression()
	node.Generator = generator
	if p.sc.CurrentToken().Type == token.Identifier {
		node.Id = p.parseBindingIdentifier()
	}
	node.Params = p.parseFormalParameterList()
	node.Body = withContext(p, override{allowYield: boolp(generator), allowReturn: boolp(true)}, p.parseFunctionBody)
	return finish(p, node, start)
}

// parseFunctionBody is a braced StatementList that processes a directive
// prologue, the same shape parseBlockStatement uses except directives are
// always recognized here.
func (p *Parser) parseFunctionBody() *ast.BlockStatement {
	start := p.start()
	p.expect("{")
	body := p.parseStatementList(true, p.atRBrace)
	p.expect("}")
	blk := ast.NewBlockStatement()
	blk.Body = body
	return finish(p, blk, start)
}
