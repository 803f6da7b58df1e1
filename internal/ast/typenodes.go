package ast

// TypeAnnotation attaches a type to a binding, a parameter, a return position
// or a class field. The printer renders it as `: T`.
type TypeAnnotation struct {
	Loc
	Type TypeNode
}

type TypeParamDecl struct {
	Loc
	Params []*TypeParam
}

type TypeParam struct {
	Loc
	Name       string
	Modifiers  []string // "in", "out", "const"
	Constraint TypeNode
	Default    TypeNode
}

// TypeArgs is an explicit type argument list such as `<string, T>`.
type TypeArgs struct {
	Loc
	Params []TypeNode
}

type InterfaceDecl struct {
	Loc
	Trivia
	Name       *Identifier
	TypeParams *TypeParamDecl
	Extends    []*ExprWithTypeArgs
	Body       []TypeMember
	Declare    bool
}

type TypeAliasDecl struct {
	Loc
	Trivia
	Name       *Identifier
	TypeParams *TypeParamDecl
	Type       TypeNode
	Declare    bool
}

type EnumDecl struct {
	Loc
	Trivia
	Name    *Identifier
	Members []*EnumMember
	Const   bool
	Declare bool
}

type EnumMember struct {
	Loc
	Name Expr // *Identifier or *StringLit
	Init Expr
}

// ModuleDecl is `namespace N {}`, `module "m" {}` or `declare global {}`.
type ModuleDecl struct {
	Loc
	Trivia
	Keyword string // "namespace", "module" or "global"
	Name    Node   // *Identifier, *QualifiedName or *StringLit; nil for global
	Body    []Stmt // nil for `declare module "m";`
	Declare bool
}

// ExprWithTypeArgs is a heritage clause entry: `implements A<T>`.
type ExprWithTypeArgs struct {
	Loc
	Expr     Expr
	TypeArgs *TypeArgs
}

type PropertySignature struct {
	Loc
	Key      Expr
	Computed bool
	Optional bool
	Readonly bool
	TypeAnn  *TypeAnnotation
}

type MethodSignature struct {
	Loc
	Key        Expr
	Computed   bool
	Optional   bool
	TypeParams *TypeParamDecl
	Params     []Pattern
	ReturnType *TypeAnnotation
}

type CallSignature struct {
	Loc
	TypeParams *TypeParamDecl
	Params     []Pattern
	ReturnType *TypeAnnotation
}

type ConstructSignature struct {
	Loc
	TypeParams *TypeParamDecl
	Params     []Pattern
	ReturnType *TypeAnnotation
}

// IndexSignature is `[key: K]: V`, in a type body or a class body.
type IndexSignature struct {
	Loc
	Trivia
	Param    *Identifier
	TypeAnn  *TypeAnnotation
	Readonly bool
	Static   bool
}

type TypeLiteral struct {
	Loc
	Members []TypeMember
}

type TypeRef struct {
	Loc
	Name     Node // *Identifier or *QualifiedName
	TypeArgs *TypeArgs
}

type QualifiedName struct {
	Loc
	Left  Node // *Identifier or *QualifiedName
	Right *Identifier
}

// KeywordType covers the predefined types (`number`, `void`, ...) and the
// `const` of `as const`.
type KeywordType struct {
	Loc
	Name string
}

// TypeQuery is `typeof x`.
type TypeQuery struct {
	Loc
	Expr     Node // *Identifier, *QualifiedName or *ImportType
	TypeArgs *TypeArgs
}

// TypePredicate is `x is T`, `asserts x` or `asserts x is T`.
type TypePredicate struct {
	Loc
	Param   string
	Asserts bool
	Type    TypeNode
}

// TypeOperator is `keyof T`, `unique symbol` or `readonly T[]`.
type TypeOperator struct {
	Loc
	Op   string
	Type TypeNode
}

type IndexedAccessType struct {
	Loc
	Object TypeNode
	Index  TypeNode
}

// MappedType is `{ [K in T as N]?: V }`.
type MappedType struct {
	Loc
	Param    *TypeParam // Constraint holds the `in` operand
	NameType TypeNode
	Optional string // "", "?", "+?" or "-?"
	Readonly string // "", "readonly", "+readonly" or "-readonly"
	Type     TypeNode
}

// LiteralType wraps a string, number, boolean or negated number literal.
type LiteralType struct {
	Loc
	Literal Expr
}

type ImportType struct {
	Loc
	Arg       *StringLit
	Qualifier Node
	TypeArgs  *TypeArgs
}

type UnionType struct {
	Loc
	Types []TypeNode
}

type IntersectionType struct {
	Loc
	Types []TypeNode
}

type OptionalType struct {
	Loc
	Type TypeNode
}

type RestType struct {
	Loc
	Type TypeNode
}

type TupleType struct {
	Loc
	Elems []TypeNode
}

type NamedTupleMember struct {
	Loc
	Label    string
	Optional bool
	Elem     TypeNode
}

type ArrayType struct {
	Loc
	Elem TypeNode
}

type FunctionType struct {
	Loc
	TypeParams *TypeParamDecl
	Params     []Pattern
	Return     TypeNode
}

type ConstructorType struct {
	Loc
	Abstract   bool
	TypeParams *TypeParamDecl
	Params     []Pattern
	Return     TypeNode
}

type ConditionalType struct {
	Loc
	Check   TypeNode
	Extends TypeNode
	True    TypeNode
	False   TypeNode
}

type InferType struct {
	Loc
	Param *TypeParam
}

type ParenType struct {
	Loc
	Type TypeNode
}

func (*TypeAnnotation) Kind() Kind     { return KindTypeAnnotation }
func (*TypeParamDecl) Kind() Kind      { return KindTypeParameterDeclaration }
func (*TypeParam) Kind() Kind          { return KindTypeParameter }
func (*TypeArgs) Kind() Kind           { return KindTypeParameterInstantiation }
func (*InterfaceDecl) Kind() Kind      { return KindInterfaceDeclaration }
func (*TypeAliasDecl) Kind() Kind      { return KindTypeAliasDeclaration }
func (*EnumDecl) Kind() Kind           { return KindEnumDeclaration }
func (*EnumMember) Kind() Kind         { return KindEnumMember }
func (*ModuleDecl) Kind() Kind         { return KindModuleDeclaration }
func (*ExprWithTypeArgs) Kind() Kind   { return KindExpressionWithTypeArguments }
func (*PropertySignature) Kind() Kind  { return KindPropertySignature }
func (*MethodSignature) Kind() Kind    { return KindMethodSignature }
func (*CallSignature) Kind() Kind      { return KindCallSignature }
func (*ConstructSignature) Kind() Kind { return KindConstructSignature }
func (*IndexSignature) Kind() Kind     { return KindIndexSignature }
func (*TypeLiteral) Kind() Kind        { return KindTypeLiteral }
func (*TypeRef) Kind() Kind            { return KindTypeReference }
func (*QualifiedName) Kind() Kind      { return KindQualifiedName }
func (*KeywordType) Kind() Kind        { return KindKeywordType }
func (*TypeQuery) Kind() Kind          { return KindTypeQuery }
func (*TypePredicate) Kind() Kind      { return KindTypePredicate }
func (*TypeOperator) Kind() Kind       { return KindTypeOperator }
func (*IndexedAccessType) Kind() Kind  { return KindIndexedAccessType }
func (*MappedType) Kind() Kind         { return KindMappedType }
func (*LiteralType) Kind() Kind        { return KindLiteralType }
func (*ImportType) Kind() Kind         { return KindImportType }
func (*UnionType) Kind() Kind          { return KindUnionType }
func (*IntersectionType) Kind() Kind   { return KindIntersectionType }
func (*OptionalType) Kind() Kind       { return KindOptionalType }
func (*RestType) Kind() Kind           { return KindRestType }
func (*TupleType) Kind() Kind          { return KindTupleType }
func (*NamedTupleMember) Kind() Kind   { return KindNamedTupleMember }
func (*ArrayType) Kind() Kind          { return KindArrayType }
func (*FunctionType) Kind() Kind       { return KindFunctionType }
func (*ConstructorType) Kind() Kind    { return KindConstructorType }
func (*ConditionalType) Kind() Kind    { return KindConditionalType }
func (*InferType) Kind() Kind          { return KindInferType }
func (*ParenType) Kind() Kind          { return KindParenthesizedType }

func (*InterfaceDecl) stmtNode() {}
func (*TypeAliasDecl) stmtNode() {}
func (*EnumDecl) stmtNode()      {}
func (*ModuleDecl) stmtNode()    {}

func (*IndexSignature) memberNode() {}

func (*PropertySignature) typeMemberNode()  {}
func (*MethodSignature) typeMemberNode()    {}
func (*CallSignature) typeMemberNode()      {}
func (*ConstructSignature) typeMemberNode() {}
func (*IndexSignature) typeMemberNode()     {}

func (*TypeRef) typeNode()           {}
func (*KeywordType) typeNode()       {}
func (*TypeQuery) typeNode()         {}
func (*TypePredicate) typeNode()     {}
func (*TypeOperator) typeNode()      {}
func (*IndexedAccessType) typeNode() {}
func (*MappedType) typeNode()        {}
func (*LiteralType) typeNode()       {}
func (*ImportType) typeNode()        {}
func (*UnionType) typeNode()         {}
func (*IntersectionType) typeNode()  {}
func (*OptionalType) typeNode()      {}
func (*RestType) typeNode()          {}
func (*TupleType) typeNode()         {}
func (*NamedTupleMember) typeNode()  {}
func (*ArrayType) typeNode()         {}
func (*FunctionType) typeNode()      {}
func (*ConstructorType) typeNode()   {}
func (*ConditionalType) typeNode()   {}
func (*InferType) typeNode()         {}
func (*ParenType) typeNode()         {}
func (*TypeLiteral) typeNode()       {}
