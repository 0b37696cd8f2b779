// Package ast defines the ESTree-shaped abstract syntax tree the parser
// produces: one Go struct per ESTree ES2015 node kind, each carrying a
// Loc span and a Type discriminant tag for JSON serialization.
package ast

import "github.com/funvibe/ecmaparse/internal/token"

// Position is a single source location, reused from the token package so
// the scanner and the AST agree on one representation.
type Position = token.Position

// Location is the start/end span every node carries.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Node is the base contract every AST node satisfies.
type Node interface {
	NodeType() string
	GetLoc() Location
	SetLoc(Location)
}

// Statement is a Node that can appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that can appear where a value is expected.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a Node that can appear as a binding/assignment target:
// ArrayPattern, ObjectPattern, AssignmentPattern, RestElement,
// Identifier (which plays double duty as both Expression and Pattern, the
// way ESTree itself overlaps the two), and MemberExpression (an assignment
// target only, never a binding target).
type Pattern interface {
	Node
	patternNode()
}

// base is embedded by every concrete node to supply Loc bookkeeping without
// repeating the same two methods 80 times.
type base struct {
	Loc Location `json:"loc"`
}

func (b *base) GetLoc() Location    { return b.Loc }
func (b *base) SetLoc(loc Location) { b.Loc = loc }

// ModuleItem is either a Statement or one of the import/export
// declarations, all of which already satisfy Statement since
// ImportDeclaration/ExportNamedDeclaration etc. can appear directly in
// Program.Body.
type ModuleItem = Statement
