package pipeline

// Pipeline represents a sequence of processing stages (scan, parse, ...).
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, threading the context through each stage in
// order. A stage that appends to ctx.Errors does not stop the pipeline --
// the caller decides what to do with a non-empty Errors slice once Run
// returns.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
