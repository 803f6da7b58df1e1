package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Classification(t *testing.T) {
	tests := []struct {
		kind      Kind
		typeOnly  bool
		assertion bool
	}{
		{KindVariableDeclarator, false, false},
		{KindArrowFunctionExpression, false, false},
		{KindTypeAnnotation, true, false},
		{KindInterfaceDeclaration, true, false},
		{KindEnumDeclaration, true, false},
		{KindModuleDeclaration, true, false},
		{KindExpressionWithTypeArguments, true, false},
		{KindParenthesizedType, true, false},
		{KindAsExpression, false, true},
		{KindNonNullExpression, false, true},
		{KindInstantiationExpression, false, true},
		{KindParameterProperty, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.typeOnly, tt.kind.TypeOnly())
			assert.Equal(t, tt.assertion, tt.kind.Assertion())
		})
	}
}

func TestKind_NamesAreUnique(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range Kinds() {
		name := k.String()
		assert.NotEmpty(t, name)
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestKind_OutOfRange(t *testing.T) {
	assert.Equal(t, "Invalid", Kind(-1).String())
	assert.False(t, KindInvalid.TypeOnly())
}

func TestIsAmbient(t *testing.T) {
	body := &BlockStmt{}
	tests := []struct {
		name string
		node Node
		want bool
	}{
		{"declare var", &VarDecl{DeclKind: "var", Declare: true}, true},
		{"plain var", &VarDecl{DeclKind: "var"}, false},
		{"overload", &FuncDecl{Function: Function{Name: ident("f")}}, true},
		{"function with body", &FuncDecl{Function: Function{Name: ident("f"), Body: body}}, false},
		{"abstract method", &ClassMethod{Key: ident("m"), Modifiers: Modifiers{Abstract: true}}, true},
		{"declare field", &ClassProperty{Key: ident("x"), Modifiers: Modifiers{Declare: true}}, true},
		{"readonly field", &ClassProperty{Key: ident("x"), Modifiers: Modifiers{Readonly: true}}, false},
		{"this param", ident("this"), true},
		{"import type", &ImportDecl{TypeOnly: true}, true},
		{"all specifiers type-only", &ImportDecl{HasNamed: true, Named: []ImportSpec{{Imported: "A", Local: "A", TypeOnly: true}}}, true},
		{"mixed specifiers", &ImportDecl{HasNamed: true, Named: []ImportSpec{{Imported: "A", Local: "A", TypeOnly: true}, {Imported: "b", Local: "b"}}}, false},
		{"side-effect import", &ImportDecl{Source: &StringLit{Raw: `"x"`, Value: "x"}}, false},
		{"export interface", &ExportNamedDecl{Decl: &InterfaceDecl{Name: ident("I")}}, true},
		{"export const", &ExportNamedDecl{Decl: &VarDecl{DeclKind: "const"}}, false},
		{"export default interface", &ExportDefaultDecl{Decl: &InterfaceDecl{Name: ident("I")}}, true},
		{"export type star", &ExportAllDecl{TypeOnly: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAmbient(tt.node))
		})
	}
}

func TestCount_SkipsTypeSyntax(t *testing.T) {
	typed := &Program{Body: []Stmt{
		&InterfaceDecl{Name: ident("P")},
		&VarDecl{DeclKind: "const", Decls: []*VarDeclarator{{
			ID:   &Identifier{Name: "v", TypeAnn: &TypeAnnotation{Type: &TypeRef{Name: ident("P")}}},
			Init: &AsExpr{Expr: ident("x"), Type: &TypeRef{Name: ident("Foo")}},
		}}},
	}}
	plain := &Program{Body: []Stmt{
		&VarDecl{DeclKind: "const", Decls: []*VarDeclarator{{
			ID:   ident("v"),
			Init: ident("x"),
		}}},
	}}

	assert.Equal(t, 4, Count(plain))
	assert.Equal(t, Count(plain), Count(typed))
}

func TestTypeOnlyNodes(t *testing.T) {
	ann := &TypeAnnotation{Type: &KeywordType{Name: "number"}}
	prog := &Program{Body: []Stmt{
		&VarDecl{DeclKind: "let", Decls: []*VarDeclarator{{ID: &Identifier{Name: "n", TypeAnn: ann}}}},
	}}

	found := TypeOnlyNodes(prog)
	assert.Equal(t, []Node{ann}, found)
}
