package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) *Identifier { return &Identifier{Name: name} }

func num(raw string) *NumberLit { return &NumberLit{Raw: raw} }

func kindsOf(root Node) []Kind {
	var out []Kind
	Inspect(root, func(n Node) bool {
		out = append(out, n.Kind())
		return true
	})
	return out
}

func TestInspect_PreOrder(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&VarDecl{DeclKind: "const", Decls: []*VarDeclarator{{
			ID:   ident("x"),
			Init: &BinaryExpr{Op: "+", Left: num("1"), Right: num("2")},
		}}},
	}}

	assert.Equal(t, []Kind{
		KindProgram,
		KindVariableDeclaration,
		KindVariableDeclarator,
		KindIdentifier,
		KindBinaryExpression,
		KindNumericLiteral,
		KindNumericLiteral,
	}, kindsOf(prog))
}

func TestInspect_SkipsChildren(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&ExprStmt{Expr: &CallExpr{Callee: ident("f"), Args: []Expr{num("1")}}},
	}}

	var seen []Kind
	Inspect(prog, func(n Node) bool {
		seen = append(seen, n.Kind())
		return n.Kind() != KindCallExpression
	})
	assert.Equal(t, []Kind{KindProgram, KindExpressionStatement, KindCallExpression}, seen)
}

func TestRewrite_RemovesFromList(t *testing.T) {
	keep := &ExprStmt{Expr: ident("a")}
	prog := &Program{Body: []Stmt{
		&TypeAliasDecl{Name: ident("T"), Type: &KeywordType{Name: "number"}},
		keep,
	}}

	Rewrite(prog, func(n Node) Node {
		if n.Kind().TypeOnly() {
			return nil
		}
		return n
	})
	require.Len(t, prog.Body, 1)
	assert.Same(t, keep, prog.Body[0])
}

func TestRewrite_ReplacementIsVisited(t *testing.T) {
	inner := ident("x")
	prog := &Program{Body: []Stmt{
		&ExprStmt{Expr: &AsExpr{
			Expr: &NonNullExpr{Expr: inner},
			Type: &TypeRef{Name: ident("Foo")},
		}},
	}}

	Rewrite(prog, func(n Node) Node {
		switch n := n.(type) {
		case *AsExpr:
			return n.Expr
		case *NonNullExpr:
			return n.Expr
		}
		return n
	})
	stmt := prog.Body[0].(*ExprStmt)
	assert.Same(t, inner, stmt.Expr)
}

func TestRewrite_RemovedSubtreeNotVisited(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&InterfaceDecl{Name: ident("P"), Body: []TypeMember{
			&PropertySignature{Key: ident("name"), TypeAnn: &TypeAnnotation{Type: &KeywordType{Name: "string"}}},
		}},
	}}

	visited := 0
	Rewrite(prog, func(n Node) Node {
		visited++
		if n.Kind() == KindInterfaceDeclaration {
			return nil
		}
		return n
	})
	assert.Equal(t, 2, visited)
	assert.Empty(t, prog.Body)
}

func TestRewrite_IllTypedReplacementKeepsOriginal(t *testing.T) {
	decl := &VarDeclarator{ID: ident("x"), Init: num("1")}
	prog := &Program{Body: []Stmt{&VarDecl{DeclKind: "let", Decls: []*VarDeclarator{decl}}}}

	Rewrite(prog, func(n Node) Node {
		if n.Kind() == KindNumericLiteral {
			return &TypeAnnotation{Type: &KeywordType{Name: "number"}}
		}
		return n
	})
	assert.Equal(t, KindNumericLiteral, decl.Init.Kind())
}

func TestRewrite_RequiredSlotKeepsOriginal(t *testing.T) {
	bin := &BinaryExpr{Op: "+", Left: ident("a"), Right: ident("b")}
	prog := &Program{Body: []Stmt{&ExprStmt{Expr: bin}}}

	Rewrite(prog, func(n Node) Node {
		if id, ok := n.(*Identifier); ok && id.Name == "a" {
			return nil
		}
		return n
	})
	assert.Equal(t, "a", bin.Left.(*Identifier).Name)
}

func TestRewrite_StatementSlotBecomesEmpty(t *testing.T) {
	ifs := &IfStmt{
		Test: ident("ok"),
		Cons: &InterfaceDecl{Name: ident("I")},
	}
	prog := &Program{Body: []Stmt{ifs}}

	Rewrite(prog, func(n Node) Node {
		if n.Kind().TypeOnly() {
			return nil
		}
		return n
	})
	assert.Equal(t, KindEmptyStatement, ifs.Cons.Kind())
	assert.Nil(t, ifs.Alt)
}

func TestRewrite_ArrayHolesSurvive(t *testing.T) {
	arr := &ArrayExpr{Elems: []Expr{num("1"), nil, num("3")}}
	prog := &Program{Body: []Stmt{&ExprStmt{Expr: arr}}}

	Rewrite(prog, func(n Node) Node { return n })
	require.Len(t, arr.Elems, 3)
	assert.Nil(t, arr.Elems[1])
}

func TestRewrite_ClearsOptionalAnnotation(t *testing.T) {
	id := &Identifier{Name: "a", TypeAnn: &TypeAnnotation{Type: &KeywordType{Name: "number"}}}
	fn := &FuncDecl{Function: Function{Name: ident("f"), Params: []Pattern{id}, Body: &BlockStmt{}}}

	Rewrite(&Program{Body: []Stmt{fn}}, func(n Node) Node {
		if n.Kind() == KindTypeAnnotation {
			return nil
		}
		return n
	})
	assert.Nil(t, id.TypeAnn)
}
