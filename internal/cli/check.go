package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/erase"
	"github.com/roach88/typeshift/internal/printer"
	"github.com/roach88/typeshift/internal/syntax"
)

// CheckReport describes erasure of one typed file.
type CheckReport struct {
	Source        string        `json:"source"`
	Pass          bool          `json:"pass"`
	TypeNodes     int           `json:"type_nodes"`
	RuntimeBefore int           `json:"runtime_before"`
	RuntimeAfter  int           `json:"runtime_after"`
	Residue       []ResidueItem `json:"residue"`
	Reparses      bool          `json:"reparses"`
	Code          string        `json:"code,omitempty"`
	Message       string        `json:"message,omitempty"`
}

// ResidueItem is a node left behind that should have been erased.
type ResidueItem struct {
	Kind string `json:"kind"`
	Pos  string `json:"pos"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Files  []CheckReport `json:"files"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Verify that erasure removes all type syntax",
		Long: `Parse typed files, erase them, and verify the result.

A file passes when no type-only node survives erasure, the number of
runtime nodes is unchanged, and the printed output parses as untyped
source.

Exit codes:
  0 - All files passed
  1 - One or more files failed
  2 - Command error (missing files, etc.)

Examples:
  typeshift check src/app.ts
  typeshift check src/*.ts --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, files []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if len(files) == 0 {
		return formatter.fail(ExitCommandError, ErrCodeNoFiles, "no input files", nil)
	}

	printOpts := opts.Config.ConvertOptions().Printer
	result := CheckResult{Files: make([]CheckReport, 0, len(files))}
	for _, src := range files {
		data, err := os.ReadFile(src)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", src), nil)
		}

		report := checkSource(src, string(data), printOpts)
		formatter.VerboseLog("%s: %d type node(s), runtime %d -> %d",
			src, report.TypeNodes, report.RuntimeBefore, report.RuntimeAfter)
		if report.Pass {
			result.Passed++
		} else {
			result.Failed++
			opts.Logger.Warn("check failed", "file", src, "residue", len(report.Residue), "code", report.Code)
		}
		result.Files = append(result.Files, report)
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{Code: ErrCodeGeneric, Message: fmt.Sprintf("%d file(s) failed", result.Failed)}
		}
		if err := formatter.Response(resp); err != nil {
			return err
		}
	} else {
		outputCheckText(cmd, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d file(s) failed", result.Failed))
	}
	return nil
}

// checkSource erases one typed source and measures the result.
func checkSource(name, src string, printOpts printer.Options) CheckReport {
	report := CheckReport{Source: name, Residue: []ResidueItem{}}

	prog, err := syntax.Parse(src, syntax.Options{TypeSyntax: true})
	if err != nil {
		report.Code = ErrCodeSyntax
		report.Message = err.Error()
		return report
	}

	report.TypeNodes = len(ast.TypeOnlyNodes(prog))
	report.RuntimeBefore = ast.Count(prog)

	erased := erase.Erase(prog)
	report.RuntimeAfter = ast.Count(erased)
	for _, n := range erase.Residue(erased) {
		report.Residue = append(report.Residue, ResidueItem{Kind: n.Kind().String(), Pos: n.Pos().String()})
	}

	out, err := printer.Print(erased, printOpts)
	if err != nil {
		report.Code = ErrCodePrint
		report.Message = err.Error()
		return report
	}
	if _, err := syntax.Parse(out, syntax.Options{}); err != nil {
		report.Code = ErrCodeSyntax
		report.Message = "erased output does not parse: " + err.Error()
		return report
	}
	report.Reparses = true

	report.Pass = len(report.Residue) == 0 && report.RuntimeBefore == report.RuntimeAfter
	return report
}

func outputCheckText(cmd *cobra.Command, result CheckResult) {
	w := cmd.OutOrStdout()
	for _, r := range result.Files {
		if r.Pass {
			fmt.Fprintf(w, "✓ %s (%d type node(s) erased)\n", r.Source, r.TypeNodes)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", r.Source)
		if r.Message != "" {
			fmt.Fprintf(w, "  Error [%s]: %s\n", r.Code, r.Message)
		}
		for _, item := range r.Residue {
			fmt.Fprintf(w, "  residue: %s at %s\n", item.Kind, item.Pos)
		}
		if r.RuntimeBefore != r.RuntimeAfter {
			fmt.Fprintf(w, "  runtime nodes changed: %d -> %d\n", r.RuntimeBefore, r.RuntimeAfter)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, len(result.Files))
}
