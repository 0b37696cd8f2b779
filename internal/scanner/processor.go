package scanner

import "github.com/funvibe/ecmaparse/internal/pipeline"

// Processor is the pipeline stage that wraps ctx.SourceCode in a Scanner
// and stores it on the context. Module source type enters strict mode
// from the first token.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	sc := New(ctx.SourceCode)
	if ctx.SourceType == pipeline.Module {
		sc.SetStrictMode(true)
	}
	ctx.TokenStream = sc
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
