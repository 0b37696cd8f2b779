// Package config is the single source of truth for the ES2015 grammar
// tables both the scanner and the parser consult, so neither hard-codes
// its own copy.
package config

// Keywords are reserved words the scanner classifies as token.Keyword,
// never token.Identifier; null, true and false lex as token.NullLiteral
// and token.BooleanLiteral instead.
var Keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"null": true, "true": true, "false": true,
}

// FutureReserved are words reserved only in strict mode; outside strict
// mode they classify as ordinary identifiers.
var FutureReserved = map[string]bool{
	"implements": true, "interface": true, "package": true, "private": true,
	"protected": true, "public": true, "static": true, "let": true,
	"yield": true,
}

// BinaryGrade is the precedence climbing table: higher grades bind
// tighter. Operators below grade LogicalGradeCutoff fold into
// LogicalExpression nodes; at or above it, BinaryExpression.
const LogicalGradeCutoff = 2

var BinaryGrade = map[string]int{
	"||": 0,
	"&&": 1,
	"|":  2,
	"^":  3,
	"&":  4,
	"===": 5, "!==": 5, "==": 5, "!=": 5,
	"<=": 6, ">=": 6, "<": 6, ">": 6, "instanceof": 6, "in": 6,
	">>>": 7, "<<": 7, ">>": 7,
	"+": 8, "-": 8,
	"*": 9, "/": 9, "%": 9,
}

// AssignmentOperators are the tokens parseAssignmentExpression recognizes
// after reinterpreting a conditional-expression's simple-reference LHS
// through the expression-to-pattern converter.
var AssignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"<<=": true, ">>=": true, ">>>=": true, "&=": true, "^=": true, "|=": true,
}

// UnaryOperators are the recognized prefix operators.
var UnaryOperators = map[string]bool{
	"delete": true, "void": true, "typeof": true,
	"++": true, "--": true, "+": true, "-": true, "~": true, "!": true,
}
