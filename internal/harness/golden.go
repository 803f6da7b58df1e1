package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result for golden comparison: the output text, or a
// single "error[<stage>]: <message>" line when the conversion failed.
func Snapshot(result *Result) []byte {
	if result.Message != "" {
		return []byte("error[" + result.Stage + "]: " + result.Message + "\n")
	}
	return []byte(result.Output)
}

// RunWithGolden executes a case and compares its snapshot against
// testdata/golden/{case.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the case cannot run. Test failure (via goldie) occurs if
// the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, c *Case) (*Result, error) {
	t.Helper()

	result, err := Run(c)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, c.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the case.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(result))
}
