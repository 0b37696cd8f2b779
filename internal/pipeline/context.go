package pipeline

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
)

// SourceType selects which top-level goal production the parser runs:
// a Script runs parseStatementList with a directive prologue, a Module
// runs parseModuleItemList and is strict from the first token.
type SourceType string

const (
	Script SourceType = "script"
	Module SourceType = "module"
)

// PipelineContext holds all the data passed between pipeline stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string // path to the source file (if any)
	SourceType SourceType

	TokenStream TokenStream
	AstRoot     *ast.Program

	Errors []*diagnostics.SyntaxError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string, sourceType SourceType) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		SourceType: sourceType,
		Errors:     []*diagnostics.SyntaxError{},
	}
}
