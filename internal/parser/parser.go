// Package parser implements the ES2015 recursive-descent grammar engine:
// the context-flag stack, the statement/declaration dispatcher, the
// expression engine, the strict-mode gate, and the AST position
// bookkeeping, layered on top of the internal/scanner collaborator.
package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/scanner"
)

// Parser drives a *scanner.Scanner top-down, producing one ast.Program
// per Parse call. It holds no other mutable state than the context flags;
// the strict-mode flag lives on the scanner.
type Parser struct {
	sc         *scanner.Scanner
	sourceType pipeline.SourceType
	ctx        Context
}

// New constructs a Parser over sc for the given source type. Module
// source is strict from the first token; the scanner's strict-mode flag
// is set by internal/scanner.Processor before the parser ever runs, and
// New re-asserts it for callers that construct a Parser directly (tests,
// the REPL).
func New(sc *scanner.Scanner, sourceType pipeline.SourceType) *Parser {
	p := &Parser{sc: sc, sourceType: sourceType, ctx: Context{AllowIn: true}}
	if sourceType == pipeline.Module {
		p.sc.SetStrictMode(true)
	}
	return p
}

// Parse runs the parser to completion, returning the Program node or the
// single *diagnostics.SyntaxError that terminated it; no partial AST is
// returned.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer diagnostics.Recover(&err)

	prog = p.parseProgram()
	return prog, nil
}

// fatalf raises the default "unexpected input" fatal error at the
// scanner's current position.
func (p *Parser) fatalf(format string, args ...interface{}) {
	diagnostics.Panic(diagnostics.Unexpected(p.sc.Position(), format, args...))
}

// fatal raises a SyntaxError with one of the named fixed messages.
func (p *Parser) fatal(code diagnostics.Code) {
	diagnostics.Panic(diagnostics.New(code, p.sc.Position()))
}

// expect consumes literal or raises a fatal error -- once a production
// has consumed its sentinel, any subsequent grammar mismatch is fatal.
func (p *Parser) expect(literal string) {
	if _, ok := p.sc.Consume(literal); !ok {
		p.fatalf("expected %q but found %s", literal, p.sc.CurrentToken())
	}
}
