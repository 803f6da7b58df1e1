package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/typeshift/internal/convert"
)

// ConvertOptions holds flags for the typed and untyped commands.
type ConvertOptions struct {
	*RootOptions
	Output string // single output file
	OutDir string // directory for outputs
	Write  bool   // write next to each input
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Source  string `json:"source"`
	Output  string `json:"output,omitempty"` // path written, empty for stdout
	Text    string `json:"text,omitempty"`   // converted text when not written to a file
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// ConvertResult holds the overall result of a conversion command.
type ConvertResult struct {
	Direction string       `json:"direction"`
	Files     []FileResult `json:"files"`
	Converted int          `json:"converted"`
	Failed    int          `json:"failed"`
}

// NewTypedCommand creates the typed command.
func NewTypedCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, convert.Typed, "typed <file>...", []string{"to-ts"},
		"Convert untyped files to typed source with inferred annotations",
		`Convert plain JavaScript files to TypeScript.

Variable declarations, function parameters and returns, and class fields
receive annotations inferred from literal initializers and local usage.
Anything that cannot be inferred is annotated unknown.

Examples:
  typeshift typed src/app.js
  typeshift typed src/app.js -o src/app.ts
  typeshift typed src/*.js --out-dir typed/
  typeshift typed src/*.js --write`)
}

// NewUntypedCommand creates the untyped command.
func NewUntypedCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, convert.Untyped, "untyped <file>...", []string{"to-js"},
		"Convert typed files to untyped source with all type syntax erased",
		`Convert TypeScript files to plain JavaScript.

Annotations, type declarations, type assertions and other type-only syntax
are removed. Runtime behavior is unchanged.

Examples:
  typeshift untyped src/app.ts
  typeshift untyped src/*.ts --out-dir dist/
  typeshift untyped src/*.ts --write --format json`)
}

func newConvertCommand(rootOpts *RootOptions, dir convert.Direction, use string, aliases []string, short, long string) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Long:    long,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), opts, dir, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (single input only)")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "write outputs into this directory")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "write each output next to its input")

	return cmd
}

func runConvert(ctx context.Context, opts *ConvertOptions, dir convert.Direction, files []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.Logger
	if ctx == nil {
		ctx = context.Background()
	}

	if len(files) == 0 {
		return formatter.fail(ExitCommandError, ErrCodeNoFiles, "no input files", nil)
	}
	targets := 0
	for _, set := range []bool{opts.Output != "", opts.OutDir != "", opts.Write} {
		if set {
			targets++
		}
	}
	if targets > 1 {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "--output, --out-dir and --write are mutually exclusive", nil)
	}
	if opts.Output != "" && len(files) > 1 {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "--output needs exactly one input file", nil)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", f), nil)
		}
	}
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("creating %s: %v", opts.OutDir, err), nil)
		}
	}

	rec, err := openRecorder(opts.Config.History)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("opening history: %v", err), nil)
	}
	defer rec.Close()

	convOpts := opts.Config.ConvertOptions()
	result := ConvertResult{Direction: string(dir), Files: make([]FileResult, 0, len(files))}

	for _, src := range files {
		fr := FileResult{Source: src, Status: "ok"}

		data, err := os.ReadFile(src)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("reading %s: %v", src, err), nil)
		}

		out, convErr := convert.Convert(dir, string(data), convOpts)
		if err := rec.record(ctx, dir, src, string(data), out, convErr); err != nil {
			logger.Warn("recording run failed", "file", src, "error", err)
		}

		if convErr != nil {
			fr.Status = "error"
			fr.Code = ErrorCode(convErr)
			fr.Message = unwrapMessage(convErr)
			result.Failed++
			result.Files = append(result.Files, fr)
			logger.Warn("conversion failed", "file", src, "code", fr.Code, "error", fr.Message)
			continue
		}

		fr.Output = opts.destination(src, dir)
		if fr.Output == "" {
			fr.Text = out
		} else if err := os.WriteFile(fr.Output, []byte(out), 0o644); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing %s: %v", fr.Output, err), nil)
		}
		result.Converted++
		result.Files = append(result.Files, fr)
		logger.Debug("converted", "file", src, "direction", dir, "output", fr.Output)
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    firstFailure(result).Code,
				Message: fmt.Sprintf("%d of %d file(s) failed", result.Failed, len(files)),
			}
		}
		if err := formatter.Response(resp); err != nil {
			return err
		}
	} else {
		outputConvertText(cmd, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d file(s) failed", result.Failed, len(files)))
	}
	return nil
}

// destination returns the path the converted text goes to, or "" for
// stdout.
func (o *ConvertOptions) destination(src string, dir convert.Direction) string {
	ext := o.Config.Extensions.Typed
	if dir == convert.Untyped {
		ext = o.Config.Extensions.Untyped
	}
	switch {
	case o.Output != "":
		return o.Output
	case o.OutDir != "":
		return filepath.Join(o.OutDir, swapExt(filepath.Base(src), ext))
	case o.Write:
		return swapExt(src, ext)
	}
	return ""
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func outputConvertText(cmd *cobra.Command, result ConvertResult) {
	w := cmd.OutOrStdout()
	for _, fr := range result.Files {
		switch {
		case fr.Status != "ok":
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n  Error [%s]: %s\n", fr.Source, fr.Code, fr.Message)
		case fr.Output == "":
			fmt.Fprint(w, fr.Text)
		default:
			fmt.Fprintf(w, "✓ %s → %s\n", fr.Source, fr.Output)
		}
	}
}

func firstFailure(result ConvertResult) FileResult {
	for _, fr := range result.Files {
		if fr.Status != "ok" {
			return fr
		}
	}
	return FileResult{}
}

// unwrapMessage drops the "convert to <direction>: " prefix so log lines
// carry only the position and cause.
func unwrapMessage(err error) string {
	var ce *convert.ConversionError
	if errors.As(err, &ce) {
		return ce.Err.Error()
	}
	return err.Error()
}
