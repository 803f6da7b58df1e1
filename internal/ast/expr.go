package ast

type Identifier struct {
	Loc
	Name     string
	TypeAnn  *TypeAnnotation
	Optional bool // `x?` in a parameter list
}

// PrivateName is a `#name` class key.
type PrivateName struct {
	Loc
	Name string
}

type NumberLit struct {
	Loc
	Raw string
}

type BigIntLit struct {
	Loc
	Raw string
}

type StringLit struct {
	Loc
	Raw   string // as written, quotes included
	Value string // decoded contents
}

type BoolLit struct {
	Loc
	Value bool
}

type NullLit struct {
	Loc
}

type RegexLit struct {
	Loc
	Raw string
}

// TemplateLit holds len(Exprs)+1 raw quasis.
type TemplateLit struct {
	Loc
	Quasis []string
	Exprs  []Expr
}

type TaggedTemplate struct {
	Loc
	Tag      Expr
	TypeArgs *TypeArgs
	Quasi    *TemplateLit
}

type ThisExpr struct {
	Loc
}

type SuperExpr struct {
	Loc
}

// ArrayExpr elements may be nil for holes.
type ArrayExpr struct {
	Loc
	Elems     []Expr
	Multiline bool
}

// ObjectExpr properties are *Property or *SpreadElement.
type ObjectExpr struct {
	Loc
	Props     []Node
	Multiline bool
}

// Property is an object literal member or an object pattern member. For
// methods and accessors Value is a *FuncExpr.
type Property struct {
	Loc
	Key       Expr
	Computed  bool
	Shorthand bool
	Value     Expr
	PropKind  string // "init", "get", "set" or "method"
}

type SpreadElement struct {
	Loc
	Arg Expr
}

type FuncExpr struct {
	Loc
	Function
}

// ArrowFunc has exactly one of Body and Expr set.
type ArrowFunc struct {
	Loc
	TypeParams *TypeParamDecl
	Params     []Pattern
	ReturnType *TypeAnnotation
	Body       *BlockStmt
	Expr       Expr
	Async      bool
}

type ClassExpr struct {
	Loc
	Class
}

type UnaryExpr struct {
	Loc
	Op  string
	Arg Expr
}

type UpdateExpr struct {
	Loc
	Op     string
	Prefix bool
	Arg    Expr
}

type BinaryExpr struct {
	Loc
	Op    string
	Left  Expr
	Right Expr
}

type LogicalExpr struct {
	Loc
	Op    string
	Left  Expr
	Right Expr
}

type AssignExpr struct {
	Loc
	Op    string
	Left  Expr
	Right Expr
}

type CondExpr struct {
	Loc
	Test Expr
	Cons Expr
	Alt  Expr
}

type CallExpr struct {
	Loc
	Callee   Expr
	TypeArgs *TypeArgs
	Args     []Expr
	Optional bool
}

type NewExpr struct {
	Loc
	Callee   Expr
	TypeArgs *TypeArgs
	Args     []Expr
	NoParens bool // `new Foo` without an argument list
}

type MemberExpr struct {
	Loc
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

type SeqExpr struct {
	Loc
	Exprs []Expr
}

type ParenExpr struct {
	Loc
	Expr Expr
}

type YieldExpr struct {
	Loc
	Arg      Expr
	Delegate bool
}

type AwaitExpr struct {
	Loc
	Arg Expr
}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Loc
	Meta     string
	Property string
}

// ObjectPattern properties are *Property (Value holds the sub-pattern) or
// *RestElement.
type ObjectPattern struct {
	Loc
	Props   []Node
	TypeAnn *TypeAnnotation
}

// ArrayPattern elements may be nil for holes.
type ArrayPattern struct {
	Loc
	Elems   []Pattern
	TypeAnn *TypeAnnotation
}

type AssignPattern struct {
	Loc
	Left  Pattern
	Right Expr
}

type RestElement struct {
	Loc
	Arg     Pattern
	TypeAnn *TypeAnnotation
}

// AsExpr is `expr as T`.
type AsExpr struct {
	Loc
	Expr Expr
	Type TypeNode
}

// SatisfiesExpr is `expr satisfies T`.
type SatisfiesExpr struct {
	Loc
	Expr Expr
	Type TypeNode
}

// TypeAssertion is the angle-bracket form `<T>expr`.
type TypeAssertion struct {
	Loc
	Type TypeNode
	Expr Expr
}

// NonNullExpr is `expr!`.
type NonNullExpr struct {
	Loc
	Expr Expr
}

// InstantiationExpr is `expr<T>` not followed by a call.
type InstantiationExpr struct {
	Loc
	Expr     Expr
	TypeArgs *TypeArgs
}

// ParamProperty is a constructor parameter with an accessibility or readonly
// modifier, which also declares a class field.
type ParamProperty struct {
	Loc
	Modifiers Modifiers
	Param     Pattern // *Identifier or *AssignPattern
}

func (*Identifier) Kind() Kind        { return KindIdentifier }
func (*PrivateName) Kind() Kind       { return KindPrivateName }
func (*NumberLit) Kind() Kind         { return KindNumericLiteral }
func (*BigIntLit) Kind() Kind         { return KindBigIntLiteral }
func (*StringLit) Kind() Kind         { return KindStringLiteral }
func (*BoolLit) Kind() Kind           { return KindBooleanLiteral }
func (*NullLit) Kind() Kind           { return KindNullLiteral }
func (*RegexLit) Kind() Kind          { return KindRegExpLiteral }
func (*TemplateLit) Kind() Kind       { return KindTemplateLiteral }
func (*TaggedTemplate) Kind() Kind    { return KindTaggedTemplateExpression }
func (*ThisExpr) Kind() Kind          { return KindThisExpression }
func (*SuperExpr) Kind() Kind         { return KindSuper }
func (*ArrayExpr) Kind() Kind         { return KindArrayExpression }
func (*ObjectExpr) Kind() Kind        { return KindObjectExpression }
func (*Property) Kind() Kind          { return KindObjectProperty }
func (*SpreadElement) Kind() Kind     { return KindSpreadElement }
func (*FuncExpr) Kind() Kind          { return KindFunctionExpression }
func (*ArrowFunc) Kind() Kind         { return KindArrowFunctionExpression }
func (*ClassExpr) Kind() Kind         { return KindClassExpression }
func (*UnaryExpr) Kind() Kind         { return KindUnaryExpression }
func (*UpdateExpr) Kind() Kind        { return KindUpdateExpression }
func (*BinaryExpr) Kind() Kind        { return KindBinaryExpression }
func (*LogicalExpr) Kind() Kind       { return KindLogicalExpression }
func (*AssignExpr) Kind() Kind        { return KindAssignmentExpression }
func (*CondExpr) Kind() Kind          { return KindConditionalExpression }
func (*CallExpr) Kind() Kind          { return KindCallExpression }
func (*NewExpr) Kind() Kind           { return KindNewExpression }
func (*MemberExpr) Kind() Kind        { return KindMemberExpression }
func (*SeqExpr) Kind() Kind           { return KindSequenceExpression }
func (*ParenExpr) Kind() Kind         { return KindParenthesizedExpression }
func (*YieldExpr) Kind() Kind         { return KindYieldExpression }
func (*AwaitExpr) Kind() Kind         { return KindAwaitExpression }
func (*MetaProperty) Kind() Kind      { return KindMetaProperty }
func (*ObjectPattern) Kind() Kind     { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind      { return KindArrayPattern }
func (*AssignPattern) Kind() Kind     { return KindAssignmentPattern }
func (*RestElement) Kind() Kind       { return KindRestElement }
func (*AsExpr) Kind() Kind            { return KindAsExpression }
func (*SatisfiesExpr) Kind() Kind     { return KindSatisfiesExpression }
func (*TypeAssertion) Kind() Kind     { return KindTypeAssertion }
func (*NonNullExpr) Kind() Kind       { return KindNonNullExpression }
func (*InstantiationExpr) Kind() Kind { return KindInstantiationExpression }
func (*ParamProperty) Kind() Kind     { return KindParameterProperty }

func (*Identifier) exprNode()        {}
func (*PrivateName) exprNode()       {}
func (*NumberLit) exprNode()         {}
func (*BigIntLit) exprNode()         {}
func (*StringLit) exprNode()         {}
func (*BoolLit) exprNode()           {}
func (*NullLit) exprNode()           {}
func (*RegexLit) exprNode()          {}
func (*TemplateLit) exprNode()       {}
func (*TaggedTemplate) exprNode()    {}
func (*ThisExpr) exprNode()          {}
func (*SuperExpr) exprNode()         {}
func (*ArrayExpr) exprNode()         {}
func (*ObjectExpr) exprNode()        {}
func (*SpreadElement) exprNode()     {}
func (*FuncExpr) exprNode()          {}
func (*ArrowFunc) exprNode()         {}
func (*ClassExpr) exprNode()         {}
func (*UnaryExpr) exprNode()         {}
func (*UpdateExpr) exprNode()        {}
func (*BinaryExpr) exprNode()        {}
func (*LogicalExpr) exprNode()       {}
func (*AssignExpr) exprNode()        {}
func (*CondExpr) exprNode()          {}
func (*CallExpr) exprNode()          {}
func (*NewExpr) exprNode()           {}
func (*MemberExpr) exprNode()        {}
func (*SeqExpr) exprNode()           {}
func (*ParenExpr) exprNode()         {}
func (*YieldExpr) exprNode()         {}
func (*AwaitExpr) exprNode()         {}
func (*MetaProperty) exprNode()      {}
func (*ObjectPattern) exprNode()     {}
func (*ArrayPattern) exprNode()      {}
func (*AssignPattern) exprNode()     {}
func (*RestElement) exprNode()       {}
func (*AsExpr) exprNode()            {}
func (*SatisfiesExpr) exprNode()     {}
func (*TypeAssertion) exprNode()     {}
func (*NonNullExpr) exprNode()       {}
func (*InstantiationExpr) exprNode() {}

func (*Identifier) patternNode()    {}
func (*ObjectPattern) patternNode() {}
func (*ArrayPattern) patternNode()  {}
func (*AssignPattern) patternNode() {}
func (*RestElement) patternNode()   {}
func (*ParamProperty) patternNode() {}
