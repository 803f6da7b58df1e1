package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/typeshift/internal/convert"
	"github.com/roach88/typeshift/internal/store"
	"github.com/roach88/typeshift/internal/testutil"
)

// Harness runs cases and records each conversion in a history store.
type Harness struct {
	store  *store.Store
	ids    store.IDGenerator
	opts   convert.Options
	logger *slog.Logger
}

// New creates a harness that records into st with IDs from ids.
// A nil logger discards output.
func New(st *store.Store, ids store.IDGenerator, opts convert.Options, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{store: st, ids: ids, opts: opts, logger: logger}
}

// Run executes a case with default options and returns the result.
//
// Each case runs against a fresh in-memory database with sequential run IDs,
// so the recorded run is reproducible.
func Run(c *Case) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := New(st, testutil.NewSequentialIDs(""), convert.DefaultOptions(), nil)
	return h.Run(context.Background(), c)
}

// Run converts the case input, records the run, and evaluates the case's
// expectations.
//
// A conversion failure is not an error here: it is part of the result and
// is checked against expect.error. Only store failures are returned.
func (h *Harness) Run(ctx context.Context, c *Case) (*Result, error) {
	dir, err := convert.ParseDirection(c.Direction)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	out, convErr := convert.Convert(dir, c.Input, h.opts)
	if convErr != nil {
		var ce *convert.ConversionError
		if errors.As(convErr, &ce) {
			result.Stage = string(ce.Stage)
		}
		result.Message = convErr.Error()
	} else {
		result.Output = out
	}

	run, err := h.record(ctx, c, dir, result)
	if err != nil {
		return nil, err
	}
	result.Run = run

	for _, msg := range EvaluateExpect(c, result, h.opts) {
		result.AddError(msg)
	}

	h.logger.Debug("case completed",
		"case", c.Name,
		"direction", c.Direction,
		"run_id", run.ID,
		"pass", result.Pass,
	)
	return result, nil
}

func (h *Harness) record(ctx context.Context, c *Case, dir convert.Direction, result *Result) (store.Run, error) {
	seq, err := h.store.NextSeq(ctx)
	if err != nil {
		return store.Run{}, err
	}

	run := store.Run{
		ID:        h.ids.Generate(),
		Seq:       seq,
		Direction: string(dir),
		Source:    "case:" + c.Name,
		InputHash: store.ContentHash(store.DomainInput, c.Input),
		Status:    store.StatusOK,
	}
	if result.Stage != "" || result.Message != "" {
		run.Status = store.StatusError
		run.ErrorCode = result.Stage
		run.Message = result.Message
	} else {
		run.OutputHash = store.ContentHash(store.DomainOutput, result.Output)
	}

	if err := h.store.WriteRun(ctx, run); err != nil {
		return store.Run{}, err
	}
	return run, nil
}
