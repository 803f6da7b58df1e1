package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/typeshift/internal/convert"
)

// Check names.
const (
	CheckEquals      = "equals"
	CheckContains    = "contains"
	CheckNotContains = "not_contains"
	CheckError       = "error"
	CheckRoundtrip   = "roundtrip"
)

// AssertionError is a failed check.
// It includes the output to help debug the failure.
type AssertionError struct {
	Type     string // Check name for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Full output for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Output != "" {
		fmt.Fprintf(&buf, "\nFull output:\n")
		for i, line := range strings.Split(strings.TrimRight(e.Output, "\n"), "\n") {
			fmt.Fprintf(&buf, "  %3d | %s\n", i+1, line)
		}
	}

	return buf.String()
}

// EvaluateExpect checks result against the case's expectations.
// Returns a slice of error messages for failed checks.
func EvaluateExpect(c *Case, result *Result, opts convert.Options) []string {
	var errs []string
	add := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	failed := result.Message != ""
	if want := c.Expect.Error; want != "" {
		add(checkError(want, result))
		return errs
	}
	if failed {
		add(&AssertionError{
			Type:     CheckError,
			Expected: "conversion to succeed",
			Actual:   result.Message,
		})
		return errs
	}

	if c.Expect.Equals != nil {
		add(checkEquals(*c.Expect.Equals, result.Output))
	}
	for _, s := range c.Expect.Contains {
		add(checkContains(s, result.Output))
	}
	for _, s := range c.Expect.NotContains {
		add(checkNotContains(s, result.Output))
	}
	if c.Roundtrip {
		add(checkRoundtrip(convert.Direction(c.Direction), result.Output, opts))
	}
	return errs
}

func checkError(stage string, result *Result) error {
	if result.Message == "" {
		return &AssertionError{
			Type:     CheckError,
			Expected: fmt.Sprintf("conversion to fail in %s", stage),
			Actual:   "conversion succeeded",
			Output:   result.Output,
		}
	}
	if result.Stage != stage {
		return &AssertionError{
			Type:     CheckError,
			Expected: fmt.Sprintf("conversion to fail in %s", stage),
			Actual:   fmt.Sprintf("failed in %s: %s", result.Stage, result.Message),
		}
	}
	return nil
}

func checkEquals(want, got string) error {
	if want == got {
		return nil
	}
	return &AssertionError{
		Type:     CheckEquals,
		Expected: fmt.Sprintf("%q", want),
		Actual:   fmt.Sprintf("%q", got),
		Output:   got,
	}
}

func checkContains(want, got string) error {
	if strings.Contains(got, want) {
		return nil
	}
	return &AssertionError{
		Type:     CheckContains,
		Expected: fmt.Sprintf("output containing %q", want),
		Actual:   "not found",
		Output:   got,
	}
}

func checkNotContains(unwanted, got string) error {
	if !strings.Contains(got, unwanted) {
		return nil
	}
	return &AssertionError{
		Type:     CheckNotContains,
		Expected: fmt.Sprintf("output without %q", unwanted),
		Actual:   fmt.Sprintf("found %d occurrence(s)", strings.Count(got, unwanted)),
		Output:   got,
	}
}

// checkRoundtrip converts typed output back to untyped and forward again,
// and untyped output through erasure once more. Either way the text must
// come back unchanged.
func checkRoundtrip(dir convert.Direction, out string, opts convert.Options) error {
	again := out
	var err error
	if dir == convert.Typed {
		again, err = convert.ToUntypedWith(again, opts)
		if err == nil {
			again, err = convert.ToTypedWith(again, opts)
		}
	} else {
		again, err = convert.ToUntypedWith(again, opts)
	}
	if err != nil {
		return &AssertionError{
			Type:     CheckRoundtrip,
			Expected: "output to convert again",
			Actual:   err.Error(),
			Output:   out,
		}
	}
	if again != out {
		return &AssertionError{
			Type:     CheckRoundtrip,
			Expected: fmt.Sprintf("%q", out),
			Actual:   fmt.Sprintf("%q", again),
			Output:   out,
		}
	}
	return nil
}
