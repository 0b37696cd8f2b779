// Package diagnostics defines the single error kind the parser raises.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/ecmaparse/internal/token"
)

// Code names one of the messages with fixed wording. An empty Code falls
// back to the generic "unexpected input" message.
type Code string

const (
	MultipleDefaultClause     Code = "multiple-default-clause"
	LabelledFunctionStrict    Code = "labelled-function-strict"
	OctalLiteralStrict        Code = "octal-literal-strict"
	DeleteUnqualifiedStrict   Code = "delete-unqualified-strict"
)

var messages = map[Code]string{
	MultipleDefaultClause:   "Multiple default clause in switch statement",
	LabelledFunctionStrict:  "Labelled functions are not allowed in strict mode",
	OctalLiteralStrict:      "Octal literals are not allowed in strict mode",
	DeleteUnqualifiedStrict: "Deleting an unqualified identifier is not allowed in strict mode",
}

// SyntaxError is the only error kind the parser produces: an optional
// human-readable message plus the scanner's current position.
type SyntaxError struct {
	Code     Code
	Message  string // used when Code is empty or not in the table
	Position token.Position
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if m, ok := messages[e.Code]; ok {
		msg = m
	}
	if msg == "" {
		msg = "unexpected input"
	}
	return fmt.Sprintf("SyntaxError: %s (%d:%d)", msg, e.Position.Line, e.Position.Column)
}

// New builds a SyntaxError with one of the named messages.
func New(code Code, pos token.Position) *SyntaxError {
	return &SyntaxError{Code: code, Position: pos}
}

// Unexpected builds a SyntaxError with the default "unexpected input"
// message, optionally describing what was found.
func Unexpected(pos token.Position, format string, args ...interface{}) *SyntaxError {
	msg := "unexpected input"
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &SyntaxError{Message: msg, Position: pos}
}

// Panic raises a SyntaxError as a panic, the mechanism the parser uses to
// unwind to the top-level Parse() call on a committed grammar mismatch.
func Panic(err *SyntaxError) {
	panic(err)
}

// Recover turns a panicked *SyntaxError into a returned error. Any other
// panic value is re-panicked -- this only catches the parser's own fatal
// errors, never an unrelated programming bug.
func Recover(err *error) {
	if r := recover(); r != nil {
		if se, ok := r.(*SyntaxError); ok {
			*err = se
			return
		}
		panic(r)
	}
}
