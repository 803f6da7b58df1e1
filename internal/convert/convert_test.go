package convert

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typeshift/internal/printer"
	"github.com/roach88/typeshift/internal/syntax"
)

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		conv func(string) (string, error)
		src  string
		want string
	}{
		{"literal declarator", ToTyped, "const x = 5;", "const x: number = 5;\n"},
		{
			"parameter evidence with opaque return",
			ToTyped,
			"function f(a) { return a + 1; }",
			"function f(a: number): unknown {\n  return a + 1;\n}\n",
		},
		{"homogeneous array", ToTyped, "const arr = [1,2,3];", "const arr: number[] = [1, 2, 3];\n"},
		{"mixed array", ToTyped, `const mixed = [1,"a"];`, "const mixed: unknown[] = [1, \"a\"];\n"},
		{
			"interface removed, value kept",
			ToUntyped,
			`interface P { name: string } const p: P = {name:"a"};`,
			"const p = { name: \"a\" };\n",
		},
		{"assertion unwrapped", ToUntyped, "const v = x as Foo;", "const v = x;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conv(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToTypedGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/inventory.js")
	require.NoError(t, err)

	out, err := ToTyped(string(src))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "inventory", []byte(out))

	back, err := ToUntyped(out)
	require.NoError(t, err)
	assert.Equal(t, string(src), back, "erasing inferred annotations restores the source")
}

func TestToUntypedIsIdempotent(t *testing.T) {
	inputs := []string{
		"const v = <T>x!;\nlet y: number = 1;",
		"export abstract class A<T> {\n  private readonly a: T[] = [];\n\n\n  abstract m(): void;\n}",
		"type A = 1;\n\n\ninterface B {}\n\n\nconst c = 1;",
		"function f(this: any, a?: string): asserts a {}",
	}
	for _, src := range inputs {
		once, err := ToUntyped(src)
		require.NoError(t, err)
		twice, err := ToUntyped(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input:\n%s", src)
	}
}

func TestErrors(t *testing.T) {
	_, err := ToTyped("const x: number = 1;")
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err), "type syntax is rejected on the untyped side")
	assert.False(t, IsPrintError(err))

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Typed, ce.Direction)
	assert.Equal(t, StageParse, ce.Stage)

	var se *syntax.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Line)
	assert.Contains(t, err.Error(), "convert to typed: 1:")

	_, err = ToUntyped("let = ;")
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Untyped, ce.Direction)
	assert.True(t, IsSyntaxError(err))

	assert.False(t, IsSyntaxError(errors.New("other")))
	assert.True(t, IsPrintError(&ConversionError{Stage: StagePrint, Err: &printer.Error{Message: "x"}}))
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"block marker", "f(/* : TSFoo */);\n", "f();\n"},
		{"line marker", "a();\n// : TSBar\nb();\n", "a();\n\nb();\n"},
		{"blank runs", "a();\n\n\n\nb();\n", "a();\n\nb();\n"},
		{"ordinary comments kept", "// note\n/* doc */\n", "// note\n/* doc */\n"},
		{"colon in string", "const s = \"http://: x\";\n", "const s = \"http://: x\";\n"},
		{"colon comment kept", "a(); // : not a marker\n/* : see below */\n", "a(); // : not a marker\n/* : see below */\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cleanup(tt.in))
		})
	}
}

func TestUntypedKeepsStringContents(t *testing.T) {
	src := "const s: string = \"http://: x\";\nconst c = '/*: c*/';\n"
	want := "const s = \"http://: x\";\nconst c = '/*: c*/';\n"

	out, err := ToUntyped(src)
	require.NoError(t, err)
	assert.Equal(t, want, out)

	again, err := ToUntyped(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Printer.Indent = 4
	out, err := ToTypedWith("function f() {\n  return 1;\n}", opts)
	require.NoError(t, err)
	assert.Equal(t, "function f(): number {\n    return 1;\n}\n", out)

	out, err = ToUntypedWith("function f(): number {\n  return 1;\n}", opts)
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n    return 1;\n}\n", out)
}

func TestConcurrentCalls(t *testing.T) {
	src, err := os.ReadFile("testdata/inventory.js")
	require.NoError(t, err)
	want, err := ToTyped(string(src))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			typed, err := ToTyped(string(src))
			if err != nil {
				return
			}
			results[i], _ = ToUntyped(typed)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, string(src), got)
	}
	assert.NotEqual(t, want, string(src))
}

func TestConvertDispatch(t *testing.T) {
	out, err := Convert(Typed, "let n = 1;", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "let n: number = 1;\n", out)

	out, err = Convert(Untyped, "let n: number = 1;", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "let n = 1;\n", out)

	_, err = Convert(Direction("sideways"), "", DefaultOptions())
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("typed")
	require.NoError(t, err)
	assert.Equal(t, Typed, d)

	d, err = ParseDirection("untyped")
	require.NoError(t, err)
	assert.Equal(t, Untyped, d)

	_, err = ParseDirection("ts")
	assert.ErrorContains(t, err, "want typed or untyped")
}
