package ast

// Function holds the parts shared by function declarations, function
// expressions and class methods.
type Function struct {
	Name       *Identifier
	TypeParams *TypeParamDecl
	Params     []Pattern
	ReturnType *TypeAnnotation
	Body       *BlockStmt // nil for overload signatures and ambient declarations
	Async      bool
	Generator  bool
}

// Class holds the parts shared by class declarations and class expressions.
type Class struct {
	Name          *Identifier
	TypeParams    *TypeParamDecl
	SuperClass    Expr
	SuperTypeArgs *TypeArgs
	Implements    []*ExprWithTypeArgs
	Members       []ClassMember
	Abstract      bool
}

type VarDecl struct {
	Loc
	Trivia
	DeclKind string // "var", "let" or "const"
	Decls    []*VarDeclarator
	Declare  bool
}

type VarDeclarator struct {
	Loc
	ID       Pattern
	Init     Expr
	Definite bool // `let x!: T`
}

type FuncDecl struct {
	Loc
	Trivia
	Function
	Declare bool
}

type ClassDecl struct {
	Loc
	Trivia
	Class
	Declare bool
}

type ReturnStmt struct {
	Loc
	Trivia
	Arg Expr
}

type IfStmt struct {
	Loc
	Trivia
	Test Expr
	Cons Stmt
	Alt  Stmt
}

type ForStmt struct {
	Loc
	Trivia
	Init   Node // *VarDecl or Expr
	Test   Expr
	Update Expr
	Body   Stmt
}

type ForInStmt struct {
	Loc
	Trivia
	Left  Node // *VarDecl or Expr
	Right Expr
	Body  Stmt
}

type ForOfStmt struct {
	Loc
	Trivia
	Left  Node // *VarDecl or Expr
	Right Expr
	Body  Stmt
	Await bool
}

type WhileStmt struct {
	Loc
	Trivia
	Test Expr
	Body Stmt
}

type DoWhileStmt struct {
	Loc
	Trivia
	Body Stmt
	Test Expr
}

type BlockStmt struct {
	Loc
	Trivia
	Body []Stmt
}

type ExprStmt struct {
	Loc
	Trivia
	Expr Expr
}

type EmptyStmt struct {
	Loc
	Trivia
}

type BreakStmt struct {
	Loc
	Trivia
	Label string
}

type ContinueStmt struct {
	Loc
	Trivia
	Label string
}

type ThrowStmt struct {
	Loc
	Trivia
	Arg Expr
}

type TryStmt struct {
	Loc
	Trivia
	Block     *BlockStmt
	Param     Pattern // nil for `catch {` and when there is no handler
	Handler   *BlockStmt
	Finalizer *BlockStmt
}

type SwitchStmt struct {
	Loc
	Trivia
	Disc  Expr
	Cases []*SwitchCase
}

type SwitchCase struct {
	Loc
	Test Expr // nil for default
	Body []Stmt
}

type LabeledStmt struct {
	Loc
	Trivia
	Label string
	Body  Stmt
}

type DebuggerStmt struct {
	Loc
	Trivia
}

// ImportSpec is one `a as b` entry of an import clause.
type ImportSpec struct {
	Imported string
	Local    string
	TypeOnly bool
}

type ImportDecl struct {
	Loc
	Trivia
	Default   string
	Namespace string
	Named     []ImportSpec
	HasNamed  bool // braces were written, possibly empty
	Source    *StringLit
	TypeOnly  bool
}

// ExportSpec is one `a as b` entry of an export clause.
type ExportSpec struct {
	Local    string
	Exported string
	TypeOnly bool
}

type ExportNamedDecl struct {
	Loc
	Trivia
	Decl     Stmt
	Specs    []ExportSpec
	Source   *StringLit
	TypeOnly bool
}

type ExportDefaultDecl struct {
	Loc
	Trivia
	Decl Node // *FuncDecl, *ClassDecl, *InterfaceDecl or Expr
}

type ExportAllDecl struct {
	Loc
	Trivia
	Exported string
	Source   *StringLit
	TypeOnly bool
}

type ClassMethod struct {
	Loc
	Trivia
	Key        Expr
	Computed   bool
	Static     bool
	MethodKind string // "constructor", "method", "get" or "set"
	Modifiers  Modifiers
	Optional   bool
	Function
}

type ClassProperty struct {
	Loc
	Trivia
	Key       Expr
	Computed  bool
	Static    bool
	Modifiers Modifiers
	Optional  bool
	Definite  bool
	TypeAnn   *TypeAnnotation
	Value     Expr
}

func (*VarDecl) Kind() Kind           { return KindVariableDeclaration }
func (*VarDeclarator) Kind() Kind     { return KindVariableDeclarator }
func (*FuncDecl) Kind() Kind          { return KindFunctionDeclaration }
func (*ClassDecl) Kind() Kind         { return KindClassDeclaration }
func (*ReturnStmt) Kind() Kind        { return KindReturnStatement }
func (*IfStmt) Kind() Kind            { return KindIfStatement }
func (*ForStmt) Kind() Kind           { return KindForStatement }
func (*ForInStmt) Kind() Kind         { return KindForInStatement }
func (*ForOfStmt) Kind() Kind         { return KindForOfStatement }
func (*WhileStmt) Kind() Kind         { return KindWhileStatement }
func (*DoWhileStmt) Kind() Kind       { return KindDoWhileStatement }
func (*BlockStmt) Kind() Kind         { return KindBlockStatement }
func (*ExprStmt) Kind() Kind          { return KindExpressionStatement }
func (*EmptyStmt) Kind() Kind         { return KindEmptyStatement }
func (*BreakStmt) Kind() Kind         { return KindBreakStatement }
func (*ContinueStmt) Kind() Kind      { return KindContinueStatement }
func (*ThrowStmt) Kind() Kind         { return KindThrowStatement }
func (*TryStmt) Kind() Kind           { return KindTryStatement }
func (*SwitchStmt) Kind() Kind        { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind        { return KindSwitchCase }
func (*LabeledStmt) Kind() Kind       { return KindLabeledStatement }
func (*DebuggerStmt) Kind() Kind      { return KindDebuggerStatement }
func (*ImportDecl) Kind() Kind        { return KindImportDeclaration }
func (*ExportNamedDecl) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportDefaultDecl) Kind() Kind { return KindExportDefaultDeclaration }
func (*ExportAllDecl) Kind() Kind     { return KindExportAllDeclaration }
func (*ClassMethod) Kind() Kind       { return KindClassMethod }
func (*ClassProperty) Kind() Kind     { return KindClassProperty }

func (*VarDecl) stmtNode()           {}
func (*FuncDecl) stmtNode()          {}
func (*ClassDecl) stmtNode()         {}
func (*ReturnStmt) stmtNode()        {}
func (*IfStmt) stmtNode()            {}
func (*ForStmt) stmtNode()           {}
func (*ForInStmt) stmtNode()         {}
func (*ForOfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()         {}
func (*DoWhileStmt) stmtNode()       {}
func (*BlockStmt) stmtNode()         {}
func (*ExprStmt) stmtNode()          {}
func (*EmptyStmt) stmtNode()         {}
func (*BreakStmt) stmtNode()         {}
func (*ContinueStmt) stmtNode()      {}
func (*ThrowStmt) stmtNode()         {}
func (*TryStmt) stmtNode()           {}
func (*SwitchStmt) stmtNode()        {}
func (*LabeledStmt) stmtNode()       {}
func (*DebuggerStmt) stmtNode()      {}
func (*ImportDecl) stmtNode()        {}
func (*ExportNamedDecl) stmtNode()   {}
func (*ExportDefaultDecl) stmtNode() {}
func (*ExportAllDecl) stmtNode()     {}

func (*ClassMethod) memberNode()   {}
func (*ClassProperty) memberNode() {}
