package printer

import (
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/syntax"
)

func roundTrip(t *testing.T, src string, opts Options) string {
	t.Helper()
	prog, err := syntax.Parse(src, syntax.Options{TypeSyntax: true})
	require.NoError(t, err)
	out, err := Print(prog, opts)
	require.NoError(t, err)
	return out
}

func TestPrintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"annotated let", "let x: number = 1;", "let x: number = 1;\n"},
		{"async arrow", "const f = async (a, b) => a + b;", "const f = async (a, b) => a + b;\n"},
		{"single param arrow", "const g = x => x", "const g = (x) => x;\n"},
		{"parens kept", "x = a * (b + c);", "x = a * (b + c);\n"},
		{"inline object", "const o = { a: 1, b, ...c };", "const o = { a: 1, b, ...c };\n"},
		{"multiline object", "const o = {\n  a: 1,\n  b: 2,\n};", "const o = {\n  a: 1,\n  b: 2\n};\n"},
		{"array holes", "const [a, , b] = [1, , 2];", "const [a, , b] = [1, , 2];\n"},
		{"union array", "type U = (string | number)[];", "type U = (string | number)[];\n"},
		{
			"interface",
			"interface P { name: string; age?: number }",
			"interface P {\n  name: string;\n  age?: number;\n}\n",
		},
		{
			"class with parameter property",
			"class A extends B {\n  private x: number = 1;\n  constructor(public y: string) {\n    super();\n  }\n}",
			"class A extends B {\n  private x: number = 1;\n  constructor(public y: string) {\n    super();\n  }\n}\n",
		},
		{"for loop", "for (let i = 0; i < 10; i++) {}", "for (let i = 0; i < 10; i++) {}\n"},
		{"for without clauses", "for (;;) { break; }", "for (;;) {\n  break;\n}\n"},
		{"for in member target", "for (a.b in o) {}", "for (a.b in o) {}\n"},
		{"for of bare target", "for (x of xs) {}", "for (x of xs) {}\n"},
		{
			"labeled loop",
			"label: for (const x of xs) continue label;",
			"label: for (const x of xs)\n  continue label;\n",
		},
		{"import", `import def, { a as b } from "m";`, "import def, { a as b } from \"m\";\n"},
		{"namespace import", `import * as ns from "m";`, "import * as ns from \"m\";\n"},
		{"export list", "export { a, b as c };", "export { a, b as c };\n"},
		{"export default class", "export default class {}", "export default class {}\n"},
		{
			"switch",
			"switch (k) {\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}",
			"switch (k) {\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n",
		},
		{
			"try without catch binding",
			"try {\n  a();\n} catch {\n} finally {\n  b();\n}",
			"try {\n  a();\n} catch {} finally {\n  b();\n}\n",
		},
		{"template", "const t = `a${b}c`;", "const t = `a${b}c`;\n"},
		{"enum", "enum E { A, B = 2 }", "enum E {\n  A,\n  B = 2\n}\n"},
		{"generic arrow", "let v = <T>(x: T): T => x;", "let v = <T>(x: T): T => x;\n"},
		{"nested negation", "x = -(-y);", "x = -(-y);\n"},
		{"optional chain", "a?.b?.[c]?.(d);", "a?.b?.[c]?.(d);\n"},
		{"new without args", "const d = new Date;", "const d = new Date;\n"},
		{"typeof", "if (typeof x === \"string\") y();", "if (typeof x === \"string\")\n  y();\n"},
		{"else if chain", "if (a) {\n  b();\n} else if (c) {\n  d();\n} else {\n  e();\n}",
			"if (a) {\n  b();\n} else if (c) {\n  d();\n} else {\n  e();\n}\n"},
		{"do while", "do { i++; } while (i < 3);", "do {\n  i++;\n} while (i < 3);\n"},
		{"getter and method", "const o = { get v() { return 1; }, m(a) {} };",
			"const o = { get v() {\n  return 1;\n}, m(a) {} };\n"},
		{"as const", "const xs = [1, 2] as const;", "const xs = [1, 2] as const;\n"},
		{"mapped type", "type R<T> = { readonly [K in keyof T]?: T[K] };",
			"type R<T> = { readonly [K in keyof T]?: T[K] };\n"},
		{"conditional type", "type C<T> = T extends string ? \"s\" : never;",
			"type C<T> = T extends string ? \"s\" : never;\n"},
		{"declare module", `declare module "pkg";`, "declare module \"pkg\";\n"},
		{"definite let", "let z!: number;", "let z!: number;\n"},
		{"regex", "const r = /a+/g;", "const r = /a+/g;\n"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundTrip(t, tt.src, DefaultOptions()))
		})
	}
}

func TestPrintComments(t *testing.T) {
	src := "// header\nconst a = 1;\n\n\n/* doc */\nfunction f() {\n  // inside\n  return a;\n}\n// end\n"
	want := "// header\nconst a = 1;\n\n/* doc */\nfunction f() {\n  // inside\n  return a;\n}\n// end\n"
	assert.Equal(t, want, roundTrip(t, src, DefaultOptions()))
}

func TestPrintOptions(t *testing.T) {
	src := "function f() {\n  a();\n\n  b();\n}"

	out := roundTrip(t, src, Options{Indent: 4, RetainBlankLines: true})
	assert.Equal(t, "function f() {\n    a();\n\n    b();\n}\n", out)

	out = roundTrip(t, src, Options{Indent: 2, RetainBlankLines: false})
	assert.Equal(t, "function f() {\n  a();\n  b();\n}\n", out)

	out = roundTrip(t, src, Options{})
	assert.Equal(t, "function f() {\n  a();\n  b();\n}\n", out, "zero indent falls back to two spaces")
}

func TestPrintSynthesizedPrecedence(t *testing.T) {
	id := func(n string) *ast.Identifier { return &ast.Identifier{Name: n} }
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.ExprStmt{Expr: &ast.BinaryExpr{
			Op:    "*",
			Left:  &ast.BinaryExpr{Op: "+", Left: id("a"), Right: id("b")},
			Right: id("c"),
		}},
		&ast.ExprStmt{Expr: &ast.BinaryExpr{
			Op:    "-",
			Left:  id("a"),
			Right: &ast.BinaryExpr{Op: "-", Left: id("b"), Right: id("c")},
		}},
		&ast.ExprStmt{Expr: &ast.ObjectExpr{}},
		&ast.VarDecl{DeclKind: "const", Decls: []*ast.VarDeclarator{{
			ID: id("f"),
			Init: &ast.ArrowFunc{Expr: &ast.ObjectExpr{Props: []ast.Node{
				&ast.Property{Key: id("a"), Value: &ast.NumberLit{Raw: "1"}, PropKind: "init"},
			}}},
		}}},
		&ast.ExprStmt{Expr: &ast.MemberExpr{
			Object:   &ast.NewExpr{Callee: id("Foo"), NoParens: true},
			Property: id("bar"),
		}},
		&ast.ExprStmt{Expr: &ast.MemberExpr{Object: &ast.NumberLit{Raw: "1"}, Property: id("toString")}},
	}}
	out, err := Print(prog, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "(a + b) * c;\na - (b - c);\n({});\nconst f = () => ({ a: 1 });\n(new Foo).bar;\n(1).toString;\n", out)
}

func TestPrintTypeParenthesization(t *testing.T) {
	fn := &ast.FunctionType{Return: &ast.KeywordType{Name: "unknown"}}
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.TypeAliasDecl{Name: &ast.Identifier{Name: "A"}, Type: &ast.ArrayType{Elem: fn}},
		&ast.TypeAliasDecl{Name: &ast.Identifier{Name: "B"}, Type: &ast.UnionType{Types: []ast.TypeNode{
			fn, &ast.KeywordType{Name: "null"},
		}}},
	}}
	out, err := Print(prog, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "type A = (() => unknown)[];\ntype B = (() => unknown) | null;\n", out)
}

func TestPrintErrorsAndFallback(t *testing.T) {
	_, err := Print(nil, DefaultOptions())
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "nil program")

	out, err := Print(&ast.Program{Body: []ast.Stmt{&ast.ExprStmt{}}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "/* : missing */;\n", out)
}

func TestPrintGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/typed_module.ts")
	require.NoError(t, err)

	out := roundTrip(t, string(src), DefaultOptions())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "typed_module", []byte(out))
}
