package ast

// Program is the root node of every tree the parser produces.
type Program struct {
	base
	Type       string     `json:"type"`
	SourceType string     `json:"sourceType"` // "script" or "module"
	Body       []ModuleItem `json:"body"`
}

func NewProgram() *Program { return &Program{Type: "Program"} }

func (p *Program) NodeType() string { return "Program" }
