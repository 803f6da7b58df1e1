// Package convert is the public entry point for source conversion.
//
// ToTyped parses untyped source, annotates it and prints it. ToUntyped parses
// typed source, erases its type syntax, prints it and cleans up the text.
// Both are pure functions of their input: every call owns its tree, nothing
// is cached, and nothing is logged.
package convert

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/roach88/typeshift/internal/annotate"
	"github.com/roach88/typeshift/internal/erase"
	"github.com/roach88/typeshift/internal/printer"
	"github.com/roach88/typeshift/internal/syntax"
)

// Direction names a conversion.
type Direction string

const (
	Typed   Direction = "typed"
	Untyped Direction = "untyped"
)

// Stage is the step a conversion failed in.
type Stage string

const (
	StageParse Stage = "parse"
	StagePrint Stage = "print"
)

// ConversionError wraps the parser or printer failure that aborted a
// conversion. The wrapped error is a *syntax.Error or a *printer.Error.
type ConversionError struct {
	Direction Direction
	Stage     Stage
	Err       error
}

func (e *ConversionError) Error() string {
	return "convert to " + string(e.Direction) + ": " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error { return e.Err }

// IsSyntaxError reports whether err was caused by unparsable input.
func IsSyntaxError(err error) bool {
	return syntax.IsError(err)
}

// IsPrintError reports whether err was caused by a tree that could not be
// printed.
func IsPrintError(err error) bool {
	var pe *printer.Error
	return errors.As(err, &pe)
}

// Options tunes the printed layout.
type Options struct {
	Printer printer.Options
}

// DefaultOptions returns the layout used by ToTyped and ToUntyped.
func DefaultOptions() Options {
	return Options{Printer: printer.DefaultOptions()}
}

// ToTyped converts untyped source to typed source with inferred annotations.
func ToTyped(src string) (string, error) {
	return ToTypedWith(src, DefaultOptions())
}

// ToUntyped converts typed source to untyped source with all type syntax
// removed.
func ToUntyped(src string) (string, error) {
	return ToUntypedWith(src, DefaultOptions())
}

// ToTypedWith is ToTyped with explicit options.
func ToTypedWith(src string, opts Options) (string, error) {
	prog, err := syntax.Parse(src, syntax.Options{TypeSyntax: false})
	if err != nil {
		return "", &ConversionError{Direction: Typed, Stage: StageParse, Err: err}
	}
	out, err := printer.Print(annotate.Annotate(prog), opts.Printer)
	if err != nil {
		return "", &ConversionError{Direction: Typed, Stage: StagePrint, Err: err}
	}
	return out, nil
}

// ToUntypedWith is ToUntyped with explicit options.
func ToUntypedWith(src string, opts Options) (string, error) {
	prog, err := syntax.Parse(src, syntax.Options{TypeSyntax: true})
	if err != nil {
		return "", &ConversionError{Direction: Untyped, Stage: StageParse, Err: err}
	}
	out, err := printer.Print(erase.Erase(prog), opts.Printer)
	if err != nil {
		return "", &ConversionError{Direction: Untyped, Stage: StagePrint, Err: err}
	}
	return Cleanup(out), nil
}

// Convert runs the conversion named by dir.
func Convert(dir Direction, src string, opts Options) (string, error) {
	switch dir {
	case Typed:
		return ToTypedWith(src, opts)
	case Untyped:
		return ToUntypedWith(src, opts)
	}
	return "", fmt.Errorf("unknown direction %q", dir)
}

// ParseDirection accepts "typed" or "untyped".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Typed, Untyped:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q (want typed or untyped)", s)
}

var (
	blockMarker = regexp.MustCompile(`/\* : [A-Za-z]+ \*/`)
	lineMarker  = regexp.MustCompile(`(?m)^[ \t]*// : [A-Za-z]+[ \t]*$`)
	blankRun    = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Cleanup removes the `/* : Kind */` markers the printer writes for nodes it
// cannot render, and `// : Kind` marker lines, then collapses runs of blank
// lines to a single blank line. Only the exact marker shapes match, so
// string contents such as "http://: x" are left alone.
func Cleanup(text string) string {
	text = blockMarker.ReplaceAllString(text, "")
	text = lineMarker.ReplaceAllString(text, "")
	return blankRun.ReplaceAllString(text, "\n\n")
}
