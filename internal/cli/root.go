package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/typeshift/internal/config"
)

// RootOptions holds global flags for all commands, plus the settings and
// logger resolved from them before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	History    string

	Config *config.Config
	Logger *slog.Logger

	env config.Lookup
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the typeshift CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(config.Environ)
}

func newRootCommand(env config.Lookup) *cobra.Command {
	opts := &RootOptions{env: env}

	cmd := &cobra.Command{
		Use:   "typeshift",
		Short: "Convert between untyped and typed JavaScript",
		Long: `typeshift converts plain JavaScript to TypeScript with inferred annotations,
and TypeScript back to plain JavaScript with all type syntax erased.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "settings file (default ./"+config.DefaultFile+" if present)")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "SQLite file recording conversion runs")

	cmd.AddCommand(NewTypedCommand(opts))
	cmd.AddCommand(NewUntypedCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// setup validates global flags, loads settings and installs the logger.
// Flags win over the environment, which wins over the settings file.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	formatter := o.formatter(cmd)
	cfg, err := config.Load(config.Resolve(o.ConfigPath))
	if err != nil {
		code := ErrorCode(err)
		if code == ErrCodeGeneric {
			code = ErrCodeNotFound
		}
		return formatter.fail(ExitCommandError, code, fmt.Sprintf("loading settings: %v", err), nil)
	}
	if err := config.ApplyEnv(cfg, o.env); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeConfigInvalid, err.Error(), nil)
	}
	if cmd.Flags().Changed("history") {
		cfg.History = o.History
	}
	o.Config = cfg

	level := cfg.SlogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
