package harness

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typeshift/internal/convert"
	"github.com/roach88/typeshift/internal/store"
	"github.com/roach88/typeshift/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestCasesGolden(t *testing.T) {
	files, err := FindCases("testdata/cases", "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		c, err := LoadCase(path)
		require.NoError(t, err, path)

		t.Run(c.Name, func(t *testing.T) {
			if c.Expect.Error != "" {
				result, err := Run(c)
				require.NoError(t, err)
				assert.True(t, result.Pass, "errors: %v", result.Errors)
				return
			}
			result, err := RunWithGolden(t, c)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRunRecordsSuccess(t *testing.T) {
	c := &Case{
		Name:        "n",
		Description: "d",
		Direction:   "typed",
		Input:       "let s = \"a\";",
	}
	result, err := Run(c)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Equal(t, "let s: string = \"a\";\n", result.Output)
	assert.Equal(t, store.Run{
		ID:         "run-0001",
		Seq:        1,
		Direction:  "typed",
		Source:     "case:n",
		InputHash:  store.ContentHash(store.DomainInput, c.Input),
		OutputHash: store.ContentHash(store.DomainOutput, result.Output),
		Status:     store.StatusOK,
	}, result.Run)
}

func TestRunRecordsFailure(t *testing.T) {
	c := &Case{
		Name:        "bad",
		Description: "d",
		Direction:   "untyped",
		Input:       "let = ;",
		Expect:      Expect{Error: "parse"},
	}
	result, err := Run(c)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Output)
	assert.Equal(t, "parse", result.Stage)
	assert.Equal(t, store.StatusError, result.Run.Status)
	assert.Equal(t, "parse", result.Run.ErrorCode)
	assert.Empty(t, result.Run.OutputHash)
	assert.Equal(t, result.Message, result.Run.Message)
}

func TestRunIsDeterministic(t *testing.T) {
	c, err := LoadCase("testdata/cases/parameter_evidence.yaml")
	require.NoError(t, err)

	first, err := Run(c)
	require.NoError(t, err)
	second, err := Run(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHarnessSharesStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer st.Close()

	h := New(st, testutil.NewSequentialIDs("case"), convert.DefaultOptions(), nil)
	ctx := context.Background()
	for _, name := range []string{"literal_declarator", "interface_removed", "typed_input_rejected"} {
		c, err := LoadCase(filepath.Join("testdata", "cases", name+".yaml"))
		require.NoError(t, err)
		_, err = h.Run(ctx, c)
		require.NoError(t, err)
	}

	runs, err := st.ReadRuns(ctx, store.Filter{})
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "case-0003", runs[2].ID)
	assert.Equal(t, int64(3), runs[2].Seq)
	assert.Equal(t, store.StatusError, runs[2].Status)

	failed, err := st.ReadRuns(ctx, store.Filter{Status: store.StatusError})
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestHarnessUsesOptions(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	opts := convert.DefaultOptions()
	opts.Printer.Indent = 4
	h := New(st, store.NewFixedGenerator("only"), opts, nil)

	result, err := h.Run(context.Background(), &Case{
		Name:        "indent",
		Description: "d",
		Direction:   "untyped",
		Input:       "function f(): number { return 1; }",
		Expect:      Expect{Equals: strPtr("function f() {\n    return 1;\n}\n")},
		Roundtrip:   true,
	})
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "only", result.Run.ID)
}

func TestEvaluateExpectFailures(t *testing.T) {
	tests := []struct {
		name   string
		c      Case
		result Result
		want   []string
	}{
		{
			name:   "equals mismatch",
			c:      Case{Direction: "typed", Expect: Expect{Equals: strPtr("a\n")}},
			result: Result{Output: "b\n"},
			want:   []string{CheckEquals},
		},
		{
			name:   "contains and not_contains",
			c:      Case{Direction: "typed", Expect: Expect{Contains: []string{"zzz"}, NotContains: []string{"b"}}},
			result: Result{Output: "b\n"},
			want:   []string{CheckContains, CheckNotContains},
		},
		{
			name:   "unexpected failure",
			c:      Case{Direction: "typed", Expect: Expect{Contains: []string{"x"}}},
			result: Result{Stage: "parse", Message: "boom"},
			want:   []string{CheckError},
		},
		{
			name:   "expected failure but succeeded",
			c:      Case{Direction: "typed", Expect: Expect{Error: "parse"}},
			result: Result{Output: "ok\n"},
			want:   []string{CheckError},
		},
		{
			name:   "failed in wrong stage",
			c:      Case{Direction: "typed", Expect: Expect{Error: "print"}},
			result: Result{Stage: "parse", Message: "boom"},
			want:   []string{CheckError},
		},
		{
			name:   "roundtrip output does not reparse",
			c:      Case{Direction: "untyped", Roundtrip: true},
			result: Result{Output: "let = ;\n"},
			want:   []string{CheckRoundtrip},
		},
		{
			name:   "roundtrip output not stable",
			c:      Case{Direction: "untyped", Roundtrip: true},
			result: Result{Output: "let  x=1\n"},
			want:   []string{CheckRoundtrip},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateExpect(&tt.c, &tt.result, convert.DefaultOptions())
			require.Len(t, errs, len(tt.want))
			for i, check := range tt.want {
				assert.True(t, strings.HasPrefix(errs[i], "Assertion failed: "+check+"\n"), errs[i])
			}
		})
	}
}

func TestAssertionErrorIncludesOutput(t *testing.T) {
	err := &AssertionError{
		Type:     CheckContains,
		Expected: "output containing \"x\"",
		Actual:   "not found",
		Output:   "let a;\nlet b;\n",
	}
	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: contains")
	assert.Contains(t, msg, "  1 | let a;")
	assert.Contains(t, msg, "  2 | let b;")
}

func TestSnapshot(t *testing.T) {
	assert.Equal(t, "let a;\n", string(Snapshot(&Result{Output: "let a;\n"})))
	assert.Equal(t, "error[parse]: boom\n", string(Snapshot(&Result{Stage: "parse", Message: "boom"})))
}
