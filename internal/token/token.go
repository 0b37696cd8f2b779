// Package token defines the lexical token vocabulary the scanner produces
// and the parser consumes.
package token

import "fmt"

// Type classifies a Token: Identifier, Keyword, Punctuator, StringLiteral,
// NumericLiteral, BooleanLiteral, NullLiteral, Template, RegularExpression,
// plus EOF for end of input.
type Type string

const (
	EOF               Type = "EOF"
	Identifier        Type = "Identifier"
	Keyword           Type = "Keyword"
	Punctuator        Type = "Punctuator"
	StringLiteral     Type = "StringLiteral"
	NumericLiteral    Type = "NumericLiteral"
	BooleanLiteral    Type = "BooleanLiteral"
	NullLiteral       Type = "NullLiteral"
	Template          Type = "Template"
	RegularExpression Type = "RegularExpression"
)

// Position is a single point in the source text.
type Position struct {
	Offset int `json:"-"`      // byte offset, 0-based
	Line   int `json:"line"`   // 1-based
	Column int `json:"column"` // 0-based
}

// Range is a half-open [Start, End) span of source positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Token is an immutable lexical token, as produced by the Scanner.
//
// For Template tokens, Value holds the cooked segment text between the
// surrounding ` / ${ / } delimiters; Head and Tail report whether this
// segment is the first/last piece of the template (used to build
// TemplateElement.Tail).
type Token struct {
	Type  Type
	Value string
	Raw   string // the literal source text, before cooking/unescaping
	Range Range

	// NewlineBefore records whether at least one line terminator appears
	// between this token and the previous one -- the sole input to ASI.
	NewlineBefore bool

	// Octal records whether a NumericLiteral is a legacy octal form
	// (^0[0-7]+$) or a StringLiteral/Template segment contains a legacy
	// octal escape sequence, both only meaningful under the strict-mode gate.
	Octal bool

	// Head/Tail mark a Template token's position within its literal.
	Head bool
	Tail bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Value, t.Range.Start.Line, t.Range.Start.Column)
}

// Is reports whether the token is a Punctuator, Keyword, or Identifier with
// the given literal value -- the comparison consume()/isBefore() use.
// Identifier is included because contextual keywords (let, of, from, as,
// async, target, static, get, set, yield) are never reserved by the
// scanner and reach the parser as plain Identifier tokens; the parser
// resolves them by grammar position, not by token type.
func (t Token) Is(value string) bool {
	return (t.Type == Punctuator || t.Type == Keyword || t.Type == Identifier) && t.Value == value
}

// IsOneOf reports whether the token matches any of the given literals.
func (t Token) IsOneOf(values ...string) bool {
	for _, v := range values {
		if t.Is(v) {
			return true
		}
	}
	return false
}
