package store

import (
	"context"
	"fmt"
)

// WriteRun appends a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - rewriting the same ID is
// silently ignored. CHECK constraints still reject an unknown direction or
// status.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, direction, source, input_hash, output_hash, status, error_code, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Seq,
		run.Direction,
		run.Source,
		run.InputHash,
		run.OutputHash,
		run.Status,
		run.ErrorCode,
		run.Message,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// NextSeq returns the next logical clock value: one past the highest seq
// recorded, or 1 for an empty store.
func (s *Store) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}
