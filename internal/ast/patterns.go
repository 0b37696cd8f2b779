package ast

// ArrayPattern: [elements] destructuring target. A nil element is an
// elision, the same as ArrayExpression.
type ArrayPattern struct {
	base
	Type     string    `json:"type"`
	Elements []Pattern `json:"elements"`
}

func NewArrayPattern() *ArrayPattern { return &ArrayPattern{Type: "ArrayPattern"} }
func (n *ArrayPattern) NodeType() string { return "ArrayPattern" }
func (*ArrayPattern) patternNode()        {}

// AssignmentProperty: one `key: value` entry of an ObjectPattern. ESTree
// models this as a Property with Kind always "init", distinguished from an
// ObjectExpression's Property only by appearing inside an ObjectPattern.
type AssignmentProperty struct {
	base
	Type      string  `json:"type"`
	Key       Expression `json:"key"`
	Value     Pattern `json:"value"`
	Shorthand bool    `json:"shorthand"`
	Computed  bool    `json:"computed"`
}

func NewAssignmentProperty() *AssignmentProperty { return &AssignmentProperty{Type: "Property"} }
func (n *AssignmentProperty) NodeType() string { return "Property" }

// ObjectPattern: { properties } destructuring target.
type ObjectPattern struct {
	base
	Type       string                 `json:"type"`
	Properties []*AssignmentProperty `json:"properties"`
}

func NewObjectPattern() *ObjectPattern { return &ObjectPattern{Type: "ObjectPattern"} }
func (n *ObjectPattern) NodeType() string { return "ObjectPattern" }
func (*ObjectPattern) patternNode()        {}

// AssignmentPattern: pattern = default, a binding with a default value
// (formal parameter defaults and destructuring defaults alike).
type AssignmentPattern struct {
	base
	Type  string     `json:"type"`
	Left  Pattern    `json:"left"`
	Right Expression `json:"right"`
}

func NewAssignmentPattern(left Pattern, right Expression) *AssignmentPattern {
	return &AssignmentPattern{Type: "AssignmentPattern", Left: left, Right: right}
}
func (n *AssignmentPattern) NodeType() string { return "AssignmentPattern" }
func (*AssignmentPattern) patternNode()        {}

// RestElement: ...argument, the tail position of a formal parameter list
// or an ArrayPattern.
type RestElement struct {
	base
	Type     string  `json:"type"`
	Argument Pattern `json:"argument"`
}

func NewRestElement(arg Pattern) *RestElement { return &RestElement{Type: "RestElement", Argument: arg} }
func (n *RestElement) NodeType() string { return "RestElement" }
func (*RestElement) patternNode()        {}
