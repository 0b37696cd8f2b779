package ast

// FunctionDeclaration: function name(params) body. Shares
// FunctionExpression's shape but is itself a Statement/ModuleItem so it
// can appear directly in a body list; Id is nil only for
// `export default function () {}`.
type FunctionDeclaration struct {
	base
	Type      string          `json:"type"`
	Id        *Identifier     `json:"id"`
	Params    []Pattern       `json:"params"`
	Body      *BlockStatement `json:"body"`
	Generator bool            `json:"generator"`
}

func NewFunctionDeclaration() *FunctionDeclaration {
	return &FunctionDeclaration{Type: "FunctionDeclaration"}
}
func (n *FunctionDeclaration) NodeType() string { return "FunctionDeclaration" }
func (*FunctionDeclaration) statementNode()      {}

// MethodDefinition: one method/getter/setter/constructor entry of a
// ClassBody.
type MethodDefinition struct {
	base
	Type     string               `json:"type"`
	Key      Expression           `json:"key"`
	Value    *FunctionExpression  `json:"value"`
	Kind     string               `json:"kind"` // "constructor" | "method" | "get" | "set"
	Static   bool                 `json:"static"`
	Computed bool                 `json:"computed"`
}

func NewMethodDefinition() *MethodDefinition { return &MethodDefinition{Type: "MethodDefinition"} }
func (n *MethodDefinition) NodeType() string { return "MethodDefinition" }

// ClassBody: the brace-delimited list of MethodDefinitions.
type ClassBody struct {
	base
	Type string              `json:"type"`
	Body []*MethodDefinition `json:"body"`
}

func NewClassBody() *ClassBody { return &ClassBody{Type: "ClassBody"} }
func (n *ClassBody) NodeType() string { return "ClassBody" }

// ClassDeclaration: class name extends super? { body }. Id is nil only for
// `export default class { ... }`.
type ClassDeclaration struct {
	base
	Type       string      `json:"type"`
	Id         *Identifier `json:"id"`
	SuperClass Expression  `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func NewClassDeclaration() *ClassDeclaration { return &ClassDeclaration{Type: "ClassDeclaration"} }
func (n *ClassDeclaration) NodeType() string { return "ClassDeclaration" }
func (*ClassDeclaration) statementNode()      {}

// ClassExpression: the expression-position counterpart of
// ClassDeclaration, e.g. `const C = class extends Base { ... }`.
type ClassExpression struct {
	base
	Type       string      `json:"type"`
	Id         *Identifier `json:"id"`
	SuperClass Expression  `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func NewClassExpression() *ClassExpression { return &ClassExpression{Type: "ClassExpression"} }
func (n *ClassExpression) NodeType() string { return "ClassExpression" }
func (*ClassExpression) expressionNode()     {}
