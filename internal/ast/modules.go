package ast

// ImportSpecifier: `imported as local` inside a named import list.
type ImportSpecifier struct {
	base
	Type     string      `json:"type"`
	Imported *Identifier `json:"imported"`
	Local    *Identifier `json:"local"`
}

func NewImportSpecifier(imported, local *Identifier) *ImportSpecifier {
	return &ImportSpecifier{Type: "ImportSpecifier", Imported: imported, Local: local}
}
func (n *ImportSpecifier) NodeType() string { return "ImportSpecifier" }

// ImportDefaultSpecifier: the bare `name` of `import name from "mod"`.
type ImportDefaultSpecifier struct {
	base
	Type  string      `json:"type"`
	Local *Identifier `json:"local"`
}

func NewImportDefaultSpecifier(local *Identifier) *ImportDefaultSpecifier {
	return &ImportDefaultSpecifier{Type: "ImportDefaultSpecifier", Local: local}
}
func (n *ImportDefaultSpecifier) NodeType() string { return "ImportDefaultSpecifier" }

// ImportNamespaceSpecifier: `* as name` of `import * as name from "mod"`.
type ImportNamespaceSpecifier struct {
	base
	Type  string      `json:"type"`
	Local *Identifier `json:"local"`
}

func NewImportNamespaceSpecifier(local *Identifier) *ImportNamespaceSpecifier {
	return &ImportNamespaceSpecifier{Type: "ImportNamespaceSpecifier", Local: local}
}
func (n *ImportNamespaceSpecifier) NodeType() string { return "ImportNamespaceSpecifier" }

// ImportDeclaration: import specifiers from "source";
type ImportDeclaration struct {
	base
	Type       string     `json:"type"`
	Specifiers []Node     `json:"specifiers"` // ImportDefaultSpecifier | ImportNamespaceSpecifier | ImportSpecifier
	Source     *Literal   `json:"source"`
}

func NewImportDeclaration() *ImportDeclaration { return &ImportDeclaration{Type: "ImportDeclaration"} }
func (n *ImportDeclaration) NodeType() string { return "ImportDeclaration" }
func (*ImportDeclaration) statementNode()      {}

// ExportSpecifier: `local as exported` inside a named export list.
type ExportSpecifier struct {
	base
	Type     string      `json:"type"`
	Local    *Identifier `json:"local"`
	Exported *Identifier `json:"exported"`
}

func NewExportSpecifier(local, exported *Identifier) *ExportSpecifier {
	return &ExportSpecifier{Type: "ExportSpecifier", Local: local, Exported: exported}
}
func (n *ExportSpecifier) NodeType() string { return "ExportSpecifier" }

// ExportNamedDeclaration: export { specifiers } (from "source")? or
// export declaration (Declaration non-nil, Specifiers empty).
type ExportNamedDeclaration struct {
	base
	Type        string             `json:"type"`
	Declaration Statement          `json:"declaration"`
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *Literal           `json:"source"`
}

func NewExportNamedDeclaration() *ExportNamedDeclaration {
	return &ExportNamedDeclaration{Type: "ExportNamedDeclaration"}
}
func (n *ExportNamedDeclaration) NodeType() string { return "ExportNamedDeclaration" }
func (*ExportNamedDeclaration) statementNode()      {}

// ExportDefaultDeclaration: export default declaration-or-expression.
type ExportDefaultDeclaration struct {
	base
	Type        string `json:"type"`
	Declaration Node   `json:"declaration"` // FunctionDeclaration | ClassDeclaration | Expression
}

func NewExportDefaultDeclaration() *ExportDefaultDeclaration {
	return &ExportDefaultDeclaration{Type: "ExportDefaultDeclaration"}
}
func (n *ExportDefaultDeclaration) NodeType() string { return "ExportDefaultDeclaration" }
func (*ExportDefaultDeclaration) statementNode()      {}

// ExportAllDeclaration: export * from "source";
type ExportAllDeclaration struct {
	base
	Type   string   `json:"type"`
	Source *Literal `json:"source"`
}

func NewExportAllDeclaration() *ExportAllDeclaration {
	return &ExportAllDeclaration{Type: "ExportAllDeclaration"}
}
func (n *ExportAllDeclaration) NodeType() string { return "ExportAllDeclaration" }
func (*ExportAllDeclaration) statementNode()      {}
