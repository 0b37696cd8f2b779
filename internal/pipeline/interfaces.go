package pipeline

import (
	"github.com/funvibe/ecmaparse/internal/token"
)

// Processor is any component that can process a PipelineContext and return
// a (possibly the same) modified context. Pipeline stages implement this.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the minimal buffered-lookahead view over the Scanner:
// PipelineContext stores the scanner under this interface, and the scanner
// tests drain tokens through Next. The parser stage type-asserts it back to
// *scanner.Scanner to reach the richer contract it drives.
type TokenStream interface {
	// Next consumes and returns the next token from the stream.
	Next() token.Token

	// Peek returns the next n tokens without consuming them. If the stream
	// has fewer than n tokens remaining, it returns all remaining tokens.
	Peek(n int) []token.Token
}
