package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/typeshift/internal/convert"
	"github.com/roach88/typeshift/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit     int
	Direction string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversion runs",
		Long: `List conversion runs recorded in the history database, oldest first.

The database path comes from --history, TYPESHIFT_HISTORY or the
history field of the settings file.

Examples:
  typeshift history --history runs.db
  typeshift history --limit 20 --direction typed
  typeshift history --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show only the most recent N runs")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "show only typed or untyped runs")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Config.History == "" {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "no history database configured (use --history)", nil)
	}
	if opts.Direction != "" {
		if _, err := convert.ParseDirection(opts.Direction); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
	}
	if opts.Limit < 0 {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "limit must be non-negative", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Config.History)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("opening history: %v", err), nil)
	}
	defer st.Close()

	runs, err := st.ReadRuns(ctx, store.Filter{Direction: opts.Direction, Limit: opts.Limit})
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	if opts.Format == "json" {
		return formatter.Success(runs)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tDIRECTION\tSTATUS\tSOURCE\tDETAIL")
	for _, r := range runs {
		detail := shortHash(r.OutputHash)
		if r.Status == store.StatusError {
			detail = r.ErrorCode + " " + r.Message
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Seq, r.Direction, r.Status, r.Source, detail)
	}
	return tw.Flush()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// recorder appends one run per converted file. A nil recorder records
// nothing.
type recorder struct {
	store *store.Store
	ids   store.IDGenerator
}

func openRecorder(path string) (*recorder, error) {
	if path == "" {
		return nil, nil
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return &recorder{store: st, ids: store.UUIDv7Generator{}}, nil
}

func (r *recorder) record(ctx context.Context, dir convert.Direction, source, input, output string, convErr error) error {
	if r == nil {
		return nil
	}
	seq, err := r.store.NextSeq(ctx)
	if err != nil {
		return err
	}
	run := store.Run{
		ID:        r.ids.Generate(),
		Seq:       seq,
		Direction: string(dir),
		Source:    source,
		InputHash: store.ContentHash(store.DomainInput, input),
		Status:    store.StatusOK,
	}
	if convErr != nil {
		run.Status = store.StatusError
		run.ErrorCode = ErrorCode(convErr)
		run.Message = convErr.Error()
	} else {
		run.OutputHash = store.ContentHash(store.DomainOutput, output)
	}
	return r.store.WriteRun(ctx, run)
}

func (r *recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.store.Close()
}
