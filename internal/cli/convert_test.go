package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typeshift/internal/testutil"
)

func TestTypedToStdout(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "const x = 5;\n"})

	stdout, _, err := execute(t, nil, "typed", filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "const x: number = 5;\n", stdout)
}

func TestUntypedAlias(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.ts": "const v = x as Foo;\n"})

	stdout, _, err := execute(t, nil, "to-js", filepath.Join(dir, "a.ts"))
	require.NoError(t, err)
	assert.Equal(t, "const v = x;\n", stdout)
}

func TestTypedWrite(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"a.js":     "let s = \"a\";\n",
		"lib/b.js": "let n = 1;\n",
	})

	stdout, _, err := execute(t, nil, "typed", "--write",
		filepath.Join(dir, "a.js"), filepath.Join(dir, "lib", "b.js"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ "+filepath.Join(dir, "a.js")+" → "+filepath.Join(dir, "a.ts"))

	assert.Equal(t, "let s: string = \"a\";\n", testutil.ReadFile(t, filepath.Join(dir, "a.ts")))
	assert.Equal(t, "let n: number = 1;\n", testutil.ReadFile(t, filepath.Join(dir, "lib", "b.ts")))
}

func TestUntypedOutDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"src/a.ts": "type T = number;\nlet a: T = 1;\n",
	})
	out := filepath.Join(dir, "dist")

	_, _, err := execute(t, nil, "untyped", "--out-dir", out, filepath.Join(dir, "src", "a.ts"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js"}, testutil.ListFiles(t, out))
	assert.Equal(t, "let a = 1;\n", testutil.ReadFile(t, filepath.Join(out, "a.js")))
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "const ok = true;\n"})
	target := filepath.Join(dir, "typed.ts")

	_, _, err := execute(t, nil, "typed", "-o", target, filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "const ok: boolean = true;\n", testutil.ReadFile(t, target))
}

func TestExtensionsFromSettings(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"typeshift.cue": "extensions: typed: \".mts\"\n",
		"a.js":          "let a = 1;\n",
	})

	_, _, err := execute(t, nil, "--config", filepath.Join(dir, "typeshift.cue"), "typed", "--write", filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "a.mts"))
	assert.NoError(t, statErr)
}

func TestConvertCommandErrors(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"a.js": "let a = 1;\n",
		"b.js": "let b = 2;\n",
	})
	a, b := filepath.Join(dir, "a.js"), filepath.Join(dir, "b.js")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"no files", []string{"typed"}, ErrCodeNoFiles},
		{"missing file", []string{"typed", filepath.Join(dir, "nope.js")}, ErrCodeNotFound},
		{"output with two inputs", []string{"typed", "-o", filepath.Join(dir, "x.ts"), a, b}, ErrCodeGeneric},
		{"exclusive targets", []string{"typed", "--write", "--out-dir", dir, a}, ErrCodeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, nil, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.code+"]")
		})
	}
}

func TestSyntaxErrorFailsFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"good.js": "let a = 1;\n",
		"bad.js":  "let a: number = 1;\n",
	})

	stdout, stderr, err := execute(t, nil, "typed",
		filepath.Join(dir, "good.js"), filepath.Join(dir, "bad.js"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "let a: number = 1;\n", stdout, "good file still converted")
	assert.Contains(t, stderr, "✗ "+filepath.Join(dir, "bad.js"))
	assert.Contains(t, stderr, "Error [E010]")
}

func TestConvertJSON(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"good.ts": "let a: number = 1;\n",
		"bad.ts":  "let = ;\n",
	})

	stdout, _, err := execute(t, nil, "--format", "json", "untyped",
		filepath.Join(dir, "good.ts"), filepath.Join(dir, "bad.ts"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string        `json:"status"`
		Data   ConvertResult `json:"data"`
		Error  *CLIError     `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeSyntax, resp.Error.Code)

	assert.Equal(t, "untyped", resp.Data.Direction)
	assert.Equal(t, 1, resp.Data.Converted)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Files, 2)
	assert.Equal(t, "let a = 1;\n", resp.Data.Files[0].Text)
	assert.Equal(t, "error", resp.Data.Files[1].Status)
	assert.NotContains(t, resp.Data.Files[1].Message, "convert to")
}

func TestSwapExt(t *testing.T) {
	assert.Equal(t, "a.ts", swapExt("a.js", ".ts"))
	assert.Equal(t, filepath.Join("x", "a.b.js"), swapExt(filepath.Join("x", "a.b.ts"), ".js"))
	assert.Equal(t, "Makefile.ts", swapExt("Makefile", ".ts"))
}
