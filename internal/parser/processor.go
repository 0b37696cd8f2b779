package parser

import (
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/scanner"
	"github.com/funvibe/ecmaparse/internal/token"
)

// Processor is the pipeline stage that runs the parser over the scanner
// produced by internal/scanner.Processor: a type guard on the token
// stream, then drive the parser and store the result on the context. A
// failed parse appends the single terminating error and leaves AstRoot
// nil rather than partially populated.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	sc, ok := ctx.TokenStream.(*scanner.Scanner)
	if !ok {
		ctx.Errors = append(ctx.Errors, diagnostics.Unexpected(token.Position{}, "parser: token stream is not a *scanner.Scanner"))
		return ctx
	}

	prog, err := New(sc, ctx.SourceType).Parse()
	if err != nil {
		ctx.Errors = append(ctx.Errors, err.(*diagnostics.SyntaxError))
		return ctx
	}

	ctx.AstRoot = prog
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
