package infer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/printer"
	"github.com/roach88/typeshift/internal/syntax"
	"github.com/roach88/typeshift/internal/types"
)

// initOf parses `const v = <src>;` and returns the initializer.
func initOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog, err := syntax.Parse("const v = "+src+";", syntax.Options{})
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VarDecl)
	return decl.Decls[0].Init
}

func field(name string, t types.Type) types.Field { return types.Field{Name: name, Type: t} }

func TestInfer(t *testing.T) {
	tests := []struct {
		src  string
		want types.Type
	}{
		{"5", types.Number},
		{"0x1F", types.Number},
		{"'a'", types.String},
		{"true", types.Boolean},
		{"(false)", types.Boolean},
		{"`t`", types.Unknown},
		{"10n", types.Unknown},
		{"null", types.Unknown},
		{"x", types.Unknown},
		{"f()", types.Unknown},
		{"a + 1", types.Unknown},
		{"new Date()", types.Unknown},
		{"[1, 2, 3]", types.ArrayOf(types.Number)},
		{"[1, 'a']", types.ArrayOf(types.Unknown)},
		{"[]", types.ArrayOf(types.Unknown)},
		{"[1, ...xs]", types.ArrayOf(types.Unknown)},
		{"[1, , 2]", types.ArrayOf(types.Unknown)},
		{"[[1], [2]]", types.ArrayOf(types.ArrayOf(types.Number))},
		{"[{ a: 1 }, { a: 2 }]", types.ArrayOf(&types.Record{Fields: []types.Field{field("a", types.Number)}})},
		{"[{ a: 1 }, { b: 2 }]", types.ArrayOf(types.Unknown)},
		{"{}", &types.Record{}},
		{
			"{ name: 'a', age: 3, tags: ['x'] }",
			&types.Record{Fields: []types.Field{
				field("name", types.String),
				field("age", types.Number),
				field("tags", types.ArrayOf(types.String)),
			}},
		},
		{
			"{ [k]: 1, ...rest, m() {}, get g() { return 1; }, 'q-s': true, 1: 'one' }",
			&types.Record{Fields: []types.Field{field("q-s", types.Boolean), field("1", types.String)}},
		},
		{"{ a: 1, b: 2, a: 's' }", &types.Record{Fields: []types.Field{field("a", types.String), field("b", types.Number)}}},
		{"{ a }", &types.Record{Fields: []types.Field{field("a", types.Unknown)}}},
		{"(a, b) => a", types.FunctionOf(2, types.Unknown)},
		{"function (x) { return 1; }", types.FunctionOf(1, types.Unknown)},
		{"async () => 1", types.FunctionOf(0, types.Unknown)},
		{"class {}", types.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := Infer(initOf(t, tt.src), nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Infer(%s) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestInferIsTotal(t *testing.T) {
	var scope *Scope
	assert.Equal(t, types.Unknown, Infer(nil, scope))
	assert.Equal(t, types.Unknown, Infer(&ast.ThisExpr{}, scope.Enter(&ast.Program{})))
	assert.Equal(t, types.Unknown, Infer(&ast.AsExpr{Expr: &ast.NumberLit{Raw: "1"}}, nil))
}

func TestScopeEnter(t *testing.T) {
	root := &Scope{Node: &ast.Program{}}
	fn := &ast.FuncDecl{}
	child := root.Enter(fn)
	assert.Same(t, root, child.Parent)
	assert.Equal(t, ast.Node(fn), child.Node)
}

func TestTypeNode(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{types.Number, "number"},
		{nil, "unknown"},
		{types.ArrayOf(types.String), "string[]"},
		{types.ArrayOf(types.FunctionOf(0, nil)), "(() => unknown)[]"},
		{&types.Record{}, "{}"},
		{
			&types.Record{Fields: []types.Field{field("a", types.Number), field("b-c", types.ArrayOf(nil))}},
			`{ a: number; "b-c": unknown[] }`,
		},
		{types.FunctionOf(2, types.Boolean), "(arg0: unknown, arg1: unknown) => boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			prog := &ast.Program{Body: []ast.Stmt{&ast.TypeAliasDecl{
				Name: &ast.Identifier{Name: "T"},
				Type: TypeNode(tt.typ),
			}}}
			out, err := printer.Print(prog, printer.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, "type T = "+tt.want+";\n", out)
		})
	}
}
