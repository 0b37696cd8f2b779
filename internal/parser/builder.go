package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// Node position bookkeeping. start/finish/finishAt are free functions
// rather than methods on each node type so any ast.Node can be passed
// through generically.

// start captures the current scanner position as a node's start.
func (p *Parser) start() token.Position {
	return p.sc.Position()
}

// finish stamps node's end location from the last consumed token (the
// scanner's "current position" immediately after the production committed
// its final token) and returns it, so callers can write
// `return finish(p, node, start)`.
func finish[T ast.Node](p *Parser, node T, start token.Position) T {
	node.SetLoc(ast.Location{Start: start, End: p.sc.PrevEnd()})
	return node
}

// finishAt stamps node's end location from an explicit position instead
// of the last consumed token -- used where the span is already known from
// a child node or from positions captured earlier (binding defaults,
// for-in/of declaration heads, NewExpression and MetaProperty parts,
// template elements).
func finishAt[T ast.Node](node T, start, end token.Position) T {
	node.SetLoc(ast.Location{Start: start, End: end})
	return node
}
