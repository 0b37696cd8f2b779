package ast

// Identifier plays double duty as an Expression (a reference) and a
// Pattern (a binding target) -- ESTree overlaps the two rather than
// splitting them into separate node kinds.
type Identifier struct {
	base
	Type string `json:"type"`
	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier { return &Identifier{Type: "Identifier", Name: name} }
func (n *Identifier) NodeType() string { return "Identifier" }
func (*Identifier) expressionNode()     {}
func (*Identifier) patternNode()        {}

// ThisExpression: the `this` keyword.
type ThisExpression struct {
	base
	Type string `json:"type"`
}

func NewThisExpression() *ThisExpression { return &ThisExpression{Type: "ThisExpression"} }
func (n *ThisExpression) NodeType() string { return "ThisExpression" }
func (*ThisExpression) expressionNode()     {}

// Super: the `super` keyword, only valid inside SuperProperty/SuperCall
// positions the parser's context stack tracks.
type Super struct {
	base
	Type string `json:"type"`
}

func NewSuper() *Super { return &Super{Type: "Super"} }
func (n *Super) NodeType() string { return "Super" }
func (*Super) expressionNode()     {}

// Literal covers string, numeric, boolean, and null literals. Value holds
// the cooked Go value (string, float64, bool, or nil); Raw preserves the
// original source text so e.g. legacy octal forms survive round-trip.
type Literal struct {
	base
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
	Raw   string      `json:"raw"`
}

func NewLiteral(value interface{}, raw string) *Literal {
	return &Literal{Type: "Literal", Value: value, Raw: raw}
}
func (n *Literal) NodeType() string { return "Literal" }
func (*Literal) expressionNode()     {}

// RegExpLiteral: a /pattern/flags literal, kept distinct from Literal
// because ESTree attaches a `regex` sub-object rather than a scalar value.
type RegExpLiteral struct {
	base
	Type  string `json:"type"`
	Regex struct {
		Pattern string `json:"pattern"`
		Flags   string `json:"flags"`
	} `json:"regex"`
	Raw string `json:"raw"`
}

func NewRegExpLiteral(pattern, flags, raw string) *RegExpLiteral {
	r := &RegExpLiteral{Type: "Literal", Raw: raw}
	r.Regex.Pattern = pattern
	r.Regex.Flags = flags
	return r
}
func (n *RegExpLiteral) NodeType() string { return "Literal" }
func (*RegExpLiteral) expressionNode()     {}

// ArrayExpression: [elements]. A nil element represents an elision (a hole
// from consecutive commas).
type ArrayExpression struct {
	base
	Type     string       `json:"type"`
	Elements []Expression `json:"elements"`
}

func NewArrayExpression() *ArrayExpression { return &ArrayExpression{Type: "ArrayExpression"} }
func (n *ArrayExpression) NodeType() string { return "ArrayExpression" }
func (*ArrayExpression) expressionNode()     {}

// Property: one `key: value` (or shorthand/method) entry of an
// ObjectExpression.
type Property struct {
	base
	Type      string     `json:"type"`
	Key       Expression `json:"key"`
	Value     Expression `json:"value"`
	Kind      string     `json:"kind"` // "init" | "get" | "set"
	Method    bool       `json:"method"`
	Shorthand bool       `json:"shorthand"`
	Computed  bool       `json:"computed"`
}

func NewProperty() *Property { return &Property{Type: "Property", Kind: "init"} }
func (n *Property) NodeType() string { return "Property" }
func (*Property) expressionNode()     {}

// ObjectExpression: { properties }.
type ObjectExpression struct {
	base
	Type       string      `json:"type"`
	Properties []*Property `json:"properties"`
}

func NewObjectExpression() *ObjectExpression { return &ObjectExpression{Type: "ObjectExpression"} }
func (n *ObjectExpression) NodeType() string { return "ObjectExpression" }
func (*ObjectExpression) expressionNode()     {}

// FunctionExpression: function name?(params) body, also the shape backing
// FunctionDeclaration and object/class method values; one builder serves
// all three.
type FunctionExpression struct {
	base
	Type      string          `json:"type"`
	Id        *Identifier     `json:"id"`
	Params    []Pattern       `json:"params"`
	Body      *BlockStatement `json:"body"`
	Generator bool            `json:"generator"`
}

func NewFunctionExpression() *FunctionExpression {
	return &FunctionExpression{Type: "FunctionExpression"}
}
func (n *FunctionExpression) NodeType() string { return "FunctionExpression" }
func (*FunctionExpression) expressionNode()     {}

// ArrowFunctionExpression: (params) => body. Body is either a
// BlockStatement (braced) or an Expression (concise body); ExpressionBody
// reports which.
type ArrowFunctionExpression struct {
	base
	Type           string      `json:"type"`
	Params         []Pattern   `json:"params"`
	Body           Node        `json:"body"`
	ExpressionBody bool        `json:"expression"`
}

func NewArrowFunctionExpression() *ArrowFunctionExpression {
	return &ArrowFunctionExpression{Type: "ArrowFunctionExpression"}
}
func (n *ArrowFunctionExpression) NodeType() string { return "ArrowFunctionExpression" }
func (*ArrowFunctionExpression) expressionNode()     {}

// MemberExpression: object[.property] or object[property].
type MemberExpression struct {
	base
	Type     string     `json:"type"`
	Object   Expression `json:"object"`
	Property Expression `json:"property"`
	Computed bool       `json:"computed"`
}

func NewMemberExpression() *MemberExpression { return &MemberExpression{Type: "MemberExpression"} }
func (n *MemberExpression) NodeType() string { return "MemberExpression" }
func (*MemberExpression) expressionNode()     {}

// A MemberExpression is a legal assignment target (`[a.b] = xs`), so it
// also satisfies Pattern even though it can never appear in a
// BindingPattern.
func (*MemberExpression) patternNode() {}

// CallExpression: callee(arguments).
type CallExpression struct {
	base
	Type      string       `json:"type"`
	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression() *CallExpression { return &CallExpression{Type: "CallExpression"} }
func (n *CallExpression) NodeType() string { return "CallExpression" }
func (*CallExpression) expressionNode()     {}

// NewExpression: new callee(arguments).
type NewExpression struct {
	base
	Type      string       `json:"type"`
	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewNewExpression() *NewExpression { return &NewExpression{Type: "NewExpression"} }
func (n *NewExpression) NodeType() string { return "NewExpression" }
func (*NewExpression) expressionNode()     {}

// TemplateElement: one cooked/raw segment of a TemplateLiteral.
type TemplateElement struct {
	base
	Type   string `json:"type"`
	Tail   bool   `json:"tail"`
	Value  struct {
		Cooked string `json:"cooked"`
		Raw    string `json:"raw"`
	} `json:"value"`
}

func NewTemplateElement(cooked, raw string, tail bool) *TemplateElement {
	el := &TemplateElement{Type: "TemplateElement", Tail: tail}
	el.Value.Cooked = cooked
	el.Value.Raw = raw
	return el
}
func (n *TemplateElement) NodeType() string { return "TemplateElement" }

// TemplateLiteral: `...${expr}...`, interleaving Quasis and Expressions
// (len(Quasis) == len(Expressions)+1).
type TemplateLiteral struct {
	base
	Type        string             `json:"type"`
	Quasis      []*TemplateElement `json:"quasis"`
	Expressions []Expression       `json:"expressions"`
}

func NewTemplateLiteral() *TemplateLiteral { return &TemplateLiteral{Type: "TemplateLiteral"} }
func (n *TemplateLiteral) NodeType() string { return "TemplateLiteral" }
func (*TemplateLiteral) expressionNode()     {}

// TaggedTemplateExpression: tag`...`.
type TaggedTemplateExpression struct {
	base
	Type  string           `json:"type"`
	Tag   Expression       `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

func NewTaggedTemplateExpression() *TaggedTemplateExpression {
	return &TaggedTemplateExpression{Type: "TaggedTemplateExpression"}
}
func (n *TaggedTemplateExpression) NodeType() string { return "TaggedTemplateExpression" }
func (*TaggedTemplateExpression) expressionNode()     {}

// UnaryExpression: a prefix operator applied once, non-associatively
// (delete, void, typeof, +, -, ~, !).
type UnaryExpression struct {
	base
	Type     string     `json:"type"`
	Operator string     `json:"operator"`
	Prefix   bool        `json:"prefix"`
	Argument Expression `json:"argument"`
}

func NewUnaryExpression(op string, arg Expression) *UnaryExpression {
	return &UnaryExpression{Type: "UnaryExpression", Operator: op, Prefix: true, Argument: arg}
}
func (n *UnaryExpression) NodeType() string { return "UnaryExpression" }
func (*UnaryExpression) expressionNode()     {}

// UpdateExpression: ++/-- as either a prefix or postfix operator.
type UpdateExpression struct {
	base
	Type     string     `json:"type"`
	Operator string     `json:"operator"`
	Prefix   bool       `json:"prefix"`
	Argument Expression `json:"argument"`
}

func NewUpdateExpression(op string, prefix bool, arg Expression) *UpdateExpression {
	return &UpdateExpression{Type: "UpdateExpression", Operator: op, Prefix: prefix, Argument: arg}
}
func (n *UpdateExpression) NodeType() string { return "UpdateExpression" }
func (*UpdateExpression) expressionNode()     {}

// BinaryExpression: operators at or above config.LogicalGradeCutoff in
// the precedence-climbing table.
type BinaryExpression struct {
	base
	Type     string     `json:"type"`
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(op string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Type: "BinaryExpression", Operator: op, Left: left, Right: right}
}
func (n *BinaryExpression) NodeType() string { return "BinaryExpression" }
func (*BinaryExpression) expressionNode()     {}

// LogicalExpression: && and || (and below, per the grade table), kept
// distinct from BinaryExpression because of their short-circuiting
// semantics (ESTree's split, not ours).
type LogicalExpression struct {
	base
	Type     string     `json:"type"`
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewLogicalExpression(op string, left, right Expression) *LogicalExpression {
	return &LogicalExpression{Type: "LogicalExpression", Operator: op, Left: left, Right: right}
}
func (n *LogicalExpression) NodeType() string { return "LogicalExpression" }
func (*LogicalExpression) expressionNode()     {}

// AssignmentExpression: left op= right, where Left has already been run
// through the expression-to-pattern converter when op is bare `=` against
// a destructuring target.
type AssignmentExpression struct {
	base
	Type     string     `json:"type"`
	Operator string     `json:"operator"`
	Left     Node       `json:"left"` // Pattern | Expression
	Right    Expression `json:"right"`
}

func NewAssignmentExpression(op string, left Node, right Expression) *AssignmentExpression {
	return &AssignmentExpression{Type: "AssignmentExpression", Operator: op, Left: left, Right: right}
}
func (n *AssignmentExpression) NodeType() string { return "AssignmentExpression" }
func (*AssignmentExpression) expressionNode()     {}

// ConditionalExpression: test ? consequent : alternate.
type ConditionalExpression struct {
	base
	Type       string     `json:"type"`
	Test       Expression `json:"test"`
	Consequent Expression `json:"consequent"`
	Alternate  Expression `json:"alternate"`
}

func NewConditionalExpression() *ConditionalExpression {
	return &ConditionalExpression{Type: "ConditionalExpression"}
}
func (n *ConditionalExpression) NodeType() string { return "ConditionalExpression" }
func (*ConditionalExpression) expressionNode()     {}

// SequenceExpression: expr, expr, ... (the comma operator).
type SequenceExpression struct {
	base
	Type        string       `json:"type"`
	Expressions []Expression `json:"expressions"`
}

func NewSequenceExpression() *SequenceExpression { return &SequenceExpression{Type: "SequenceExpression"} }
func (n *SequenceExpression) NodeType() string { return "SequenceExpression" }
func (*SequenceExpression) expressionNode()     {}

// SpreadElement: ...argument, valid inside array literals and call
// argument lists.
type SpreadElement struct {
	base
	Type     string     `json:"type"`
	Argument Expression `json:"argument"`
}

func NewSpreadElement(arg Expression) *SpreadElement {
	return &SpreadElement{Type: "SpreadElement", Argument: arg}
}
func (n *SpreadElement) NodeType() string { return "SpreadElement" }
func (*SpreadElement) expressionNode()     {}

// YieldExpression: yield argument? or yield* argument (Delegate).
// Delegate is only ever true together with a non-nil Argument.
type YieldExpression struct {
	base
	Type     string     `json:"type"`
	Argument Expression `json:"argument"`
	Delegate bool       `json:"delegate"`
}

func NewYieldExpression() *YieldExpression { return &YieldExpression{Type: "YieldExpression"} }
func (n *YieldExpression) NodeType() string { return "YieldExpression" }
func (*YieldExpression) expressionNode()     {}

// ParenthesizedExpression: a parenthesised expression, retained as its own
// node (rather than discarded) so `(a, b)` and `(a, b) => a + b` can share
// one snapshot-based cover grammar with no residual state differences.
type ParenthesizedExpression struct {
	base
	Type       string     `json:"type"`
	Expression Expression `json:"expression"`
}

func NewParenthesizedExpression(expr Expression) *ParenthesizedExpression {
	return &ParenthesizedExpression{Type: "ParenthesizedExpression", Expression: expr}
}
func (n *ParenthesizedExpression) NodeType() string { return "ParenthesizedExpression" }
func (*ParenthesizedExpression) expressionNode()     {}

// MetaProperty: new.target, the sole ES2015 meta-property.
type MetaProperty struct {
	base
	Type string      `json:"type"`
	Meta *Identifier `json:"meta"`
	Property *Identifier `json:"property"`
}

func NewMetaProperty() *MetaProperty { return &MetaProperty{Type: "MetaProperty"} }
func (n *MetaProperty) NodeType() string { return "MetaProperty" }
func (*MetaProperty) expressionNode()     {}
