package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/typeshift/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // case filter (glob pattern)
}

// CaseResult holds the result of a single case execution.
type CaseResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <cases-dir>",
		Short: "Run conformance cases",
		Long: `Run YAML conformance cases through the converter.

Each case converts its input and checks the output against the case's
expectations. When <cases-dir>/golden/<case>.golden exists the output
must also match it byte for byte.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, etc.)

Examples:
  typeshift test ./cases
  typeshift test ./cases --filter "class_*"
  typeshift test ./cases --update
  typeshift test ./cases --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, casesDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(casesDir); os.IsNotExist(err) {
		return formatter.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("cases directory not found: %s", casesDir), nil)
	}

	caseFiles, err := harness.FindCases(casesDir, opts.Filter)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("failed to find cases: %v", err), nil)
	}

	result := TestResult{
		Cases: make([]CaseResult, 0, len(caseFiles)),
		Total: len(caseFiles),
	}

	if len(caseFiles) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(formatter, result)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No cases found.")
		return nil
	}

	for _, caseFile := range caseFiles {
		cr := runCase(caseFile, casesDir, opts)
		opts.Logger.Debug("case finished", "case", cr.Name, "pass", cr.Pass)
		if opts.Format != "json" {
			printCaseResult(cmd, cr)
		}

		result.Cases = append(result.Cases, cr)
		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputTestJSON(formatter, result)
	}
	return outputTestText(cmd, result)
}

// runCase executes a single case and returns the result.
func runCase(caseFile, casesDir string, opts *TestOptions) CaseResult {
	name := strings.TrimSuffix(filepath.Base(caseFile), filepath.Ext(caseFile))

	c, err := harness.LoadCase(caseFile)
	if err != nil {
		return CaseResult{
			Name:   name,
			Errors: []string{fmt.Sprintf("failed to load case: %v", err)},
		}
	}

	result, err := harness.Run(c)
	if err != nil {
		return CaseResult{
			Name:   c.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	goldenPath := goldenFilePath(casesDir, c.Name)
	snapshot := harness.Snapshot(result)

	if opts.Update {
		if err := updateGoldenFile(goldenPath, snapshot); err != nil {
			return CaseResult{
				Name:   c.Name,
				Errors: []string{fmt.Sprintf("failed to update golden file: %v", err)},
			}
		}
		return CaseResult{Name: c.Name, Pass: result.Pass, Errors: result.Errors}
	}

	golden, err := os.ReadFile(goldenPath)
	switch {
	case os.IsNotExist(err):
		// No golden file - use expectation checks only
	case err != nil:
		result.AddError(fmt.Sprintf("golden comparison failed: %v", err))
	case !bytes.Equal(golden, snapshot):
		result.AddError("output does not match golden file (run with --update to regenerate)")
	}

	return CaseResult{Name: c.Name, Pass: result.Pass, Errors: result.Errors}
}

// goldenFilePath returns the path to the golden file for a case.
func goldenFilePath(casesDir, name string) string {
	return filepath.Join(casesDir, "golden", name+".golden")
}

// updateGoldenFile writes the current snapshot as the golden file.
func updateGoldenFile(goldenPath string, snapshot []byte) error {
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(goldenPath, snapshot, 0o644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

func printCaseResult(cmd *cobra.Command, cr CaseResult) {
	w := cmd.OutOrStdout()
	if cr.Pass {
		fmt.Fprintf(w, "✓ %s\n", cr.Name)
		return
	}
	fmt.Fprintf(w, "✗ %s\n", cr.Name)
	for _, e := range cr.Errors {
		fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(strings.TrimRight(e, "\n"), "\n", "\n  "))
	}
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(formatter *OutputFormatter, result TestResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}
	if result.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeGeneric,
			Message: fmt.Sprintf("%d case(s) failed", result.Failed),
		}
	}

	if err := formatter.Response(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}
	return nil
}

// outputTestText outputs the test summary as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
