// Package config loads typeshift settings.
//
// Settings come from three layers, later layers winning: the defaults in the
// embedded CUE schema, an optional typeshift.cue file unified with that
// schema, and TYPESHIFT_* environment variables. Command-line flags are
// applied on top by the CLI.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"github.com/xyproto/env/v2"

	"github.com/roach88/typeshift/internal/convert"
	"github.com/roach88/typeshift/internal/printer"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "typeshift.cue"

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel = "TYPESHIFT_LOG_LEVEL"
	EnvHistory  = "TYPESHIFT_HISTORY"
)

//go:embed schema.cue
var schemaSrc string

// Config is the decoded settings value.
type Config struct {
	Indent           int        `json:"indent"`
	RetainBlankLines bool       `json:"retain_blank_lines"`
	Extensions       Extensions `json:"extensions"`
	History          string     `json:"history"`
	LogLevel         string     `json:"log_level"`
}

// Extensions are the file suffixes written by each direction.
type Extensions struct {
	Typed   string `json:"typed"`
	Untyped string `json:"untyped"`
}

// Error is an invalid settings file or override.
type Error struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsError reports whether err is or wraps a *Error.
func IsError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// Default returns the schema defaults.
func Default() *Config {
	cfg, err := decode(nil, "")
	if err != nil {
		panic("config: embedded schema: " + err.Error())
	}
	return cfg
}

// Load reads the settings file at path and unifies it with the schema. An
// empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data, path)
}

// Resolve returns the settings file to load: the explicit path when set,
// otherwise DefaultFile if it exists in the working directory.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		return ""
	}
	return DefaultFile
}

func decode(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err, cue.Value{}, "")
	}
	v := schema.LookupPath(cue.ParsePath(definition))

	var user cue.Value
	if data != nil {
		user = ctx.CompileBytes(data, cue.Filename(filename))
		if err := user.Err(); err != nil {
			return nil, formatCUEError(err, user, filename)
		}
		v = v.Unify(user)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, user, filename)
	}

	cfg := &Config{}
	if err := v.Decode(cfg); err != nil {
		return nil, formatCUEError(err, user, filename)
	}
	return cfg, nil
}

// definition is the schema definition settings files are unified with.
const definition = "#Config"

// formatCUEError keeps the first CUE error. The field path is relative to the
// settings file, and the position points into that file when the error has
// one there or the offending field exists in it.
func formatCUEError(err error, user cue.Value, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Field: "cue", Message: err.Error()}
	}
	first := errs[0]
	ce := &Error{Field: "cue", Message: first.Error()}

	path := first.Path()
	if len(path) > 0 && path[0] == definition {
		path = path[1:]
	}
	if len(path) > 0 {
		ce.Field = strings.Join(path, ".")
	}

	positions := cueerrors.Positions(first)
	for _, pos := range positions {
		if filename != "" && pos.Filename() == filename {
			ce.Pos = pos
			return ce
		}
	}
	if len(path) > 0 && user.Exists() {
		if pos := user.LookupPath(cue.ParsePath(ce.Field)).Pos(); pos.IsValid() {
			ce.Pos = pos
			return ce
		}
	}
	if len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}

// Lookup reads one environment variable.
type Lookup func(name string) (string, bool)

// Environ reads the process environment.
func Environ(name string) (string, bool) {
	if !env.Has(name) {
		return "", false
	}
	return env.Str(name), true
}

// ApplyEnv overrides cfg from TYPESHIFT_LOG_LEVEL and TYPESHIFT_HISTORY.
func ApplyEnv(cfg *Config, lookup Lookup) error {
	if v, ok := lookup(EnvLogLevel); ok {
		if _, err := parseLevel(v); err != nil {
			return &Error{Field: EnvLogLevel, Message: err.Error()}
		}
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvHistory); ok {
		cfg.History = v
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ConvertOptions returns the printer layout for conversions.
func (c *Config) ConvertOptions() convert.Options {
	return convert.Options{Printer: printer.Options{
		Indent:           c.Indent,
		RetainBlankLines: c.RetainBlankLines,
	}}
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}
