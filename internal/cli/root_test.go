package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typeshift/internal/testutil"
)

// execute runs the CLI with a fixed environment and captures both streams.
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
	cmd := newRootCommand(lookup)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "typeshift", cmd.Use)
	assert.Contains(t, cmd.Long, "TypeScript")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := map[string]string{
		"typed":   "typed",
		"to-ts":   "typed",
		"untyped": "untyped",
		"to-js":   "untyped",
		"check":   "check",
		"test":    "test",
		"history": "history",
	}

	for arg, name := range commands {
		t.Run(arg, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{arg})
			require.NoError(t, err, "Command %s should exist", arg)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("history"))
}

func TestConvertCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"typed", "untyped"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)

		outputFlag := sub.Flags().Lookup("output")
		require.NotNil(t, outputFlag)
		assert.Equal(t, "o", outputFlag.Shorthand)
		assert.NotNil(t, sub.Flags().Lookup("out-dir"))
		assert.NotNil(t, sub.Flags().Lookup("write"))
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, nil, "--format", "xml", "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSettingsFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"typeshift.cue": "indent: 4\n",
		"a.ts":          "function f(): number { return 1; }\n",
	})

	stdout, _, err := execute(t, nil, "--config", filepath.Join(dir, "typeshift.cue"), "untyped", filepath.Join(dir, "a.ts"))
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n    return 1;\n}\n", stdout)
}

func TestSettingsFileInvalid(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"typeshift.cue": "indent: 12\n",
		"a.js":          "let a = 1;\n",
	})

	stdout, _, err := execute(t, nil, "--config", filepath.Join(dir, "typeshift.cue"), "typed", filepath.Join(dir, "a.js"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E020]")
}

func TestSettingsFileMissing(t *testing.T) {
	stdout, _, err := execute(t, nil, "--config", filepath.Join(t.TempDir(), "nope.cue"), "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E002]")
}

func TestEnvironmentInvalid(t *testing.T) {
	stdout, _, err := execute(t, map[string]string{"TYPESHIFT_LOG_LEVEL": "loud"}, "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E020]")
}

func TestVerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "let a = 1;\n"})

	stdout, stderr, err := execute(t, nil, "-v", "typed", filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "let a: number = 1;\n", stdout)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "msg=converted")
}
