package ast

import "fmt"

// Pos is a 1-based source position. The zero Pos marks synthesized nodes.
type Pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsValid reports whether the position came from source text.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is a sealed interface implemented by every tree node.
type Node interface {
	Kind() Kind
	Pos() Pos
	astNode()
}

// Stmt is a node that may appear in a statement list.
type Stmt interface {
	Node
	Leading() *Trivia
	stmtNode()
}

// Expr is a node that may appear in expression position.
type Expr interface {
	Node
	exprNode()
}

// Pattern is a binding target: a declarator id, a parameter or a catch param.
type Pattern interface {
	Node
	patternNode()
}

// TypeNode is a type expression.
type TypeNode interface {
	Node
	typeNode()
}

// ClassMember is an element of a class body.
type ClassMember interface {
	Node
	Leading() *Trivia
	memberNode()
}

// TypeMember is an element of an interface body or a type literal.
type TypeMember interface {
	Node
	typeMemberNode()
}

// Loc records where a node starts. Every node embeds it.
type Loc struct {
	Start Pos
}

func (l Loc) Pos() Pos { return l.Start }
func (Loc) astNode()   {}

// At returns a Loc starting at p.
func At(p Pos) Loc { return Loc{Start: p} }

// Trivia carries the source decoration kept for best-effort line retention.
type Trivia struct {
	Comments  []string // leading comments, raw text including delimiters
	BlankLine bool     // a blank line preceded the node in the source
}

func (t *Trivia) Leading() *Trivia { return t }

// Modifiers are the TypeScript-only keywords allowed on class members and
// constructor parameters.
type Modifiers struct {
	Access   string // "", "public", "private" or "protected"
	Readonly bool
	Abstract bool
	Override bool
	Declare  bool
}

// Any reports whether at least one modifier is set.
func (m Modifiers) Any() bool {
	return m.Access != "" || m.Readonly || m.Abstract || m.Override || m.Declare
}

// Program is the root of a parsed source file.
type Program struct {
	Loc
	Body     []Stmt
	Trailing []string // comments after the last statement
}

func (*Program) Kind() Kind { return KindProgram }
