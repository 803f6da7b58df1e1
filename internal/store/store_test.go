package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRun(id string, seq int64, direction string) Run {
	return Run{
		ID:         id,
		Seq:        seq,
		Direction:  direction,
		Source:     "src/" + id + ".js",
		InputHash:  ContentHash(DomainInput, "input "+id),
		OutputHash: ContentHash(DomainOutput, "output "+id),
		Status:     StatusOK,
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := createTestStore(t)

	for name, want := range map[string]string{
		"journal_mode": "wal",
		"synchronous":  "1",
		"busy_timeout": "5000",
	} {
		got, err := s.pragma(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestOpenCreatesIndexes(t *testing.T) {
	s := createTestStore(t)

	rows, err := s.db.Query(`SELECT name FROM sqlite_master WHERE type = 'index' AND tbl_name = 'runs' AND name LIKE 'idx_%' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"idx_runs_direction", "idx_runs_seq"}, names)
}

func TestOpenMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.WriteRun(ctx, testRun("m", 1, "typed")))
	seq, err := s.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.WriteRun(ctx, testRun("a", 1, "typed")))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.ReadRuns(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "history.db"))
	assert.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, (&Store{}).Close())
	var s *Store
	assert.NoError(t, s.Close())
}

func TestWriteAndReadRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := testRun("run-1", 1, "untyped")
	want.Status = StatusError
	want.OutputHash = ""
	want.ErrorCode = "E010"
	want.Message = "1:5: unexpected token"
	require.NoError(t, s.WriteRun(ctx, want))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadRunNotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.ReadRun(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWriteRunIsIdempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := testRun("dup", 1, "typed")
	require.NoError(t, s.WriteRun(ctx, first))

	second := first
	second.Source = "other.js"
	require.NoError(t, s.WriteRun(ctx, second))

	got, err := s.ReadRun(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, first.Source, got.Source, "first write wins")
}

func TestWriteRunRejectsBadValues(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	bad := testRun("x", 1, "sideways")
	assert.Error(t, s.WriteRun(ctx, bad))

	bad = testRun("y", 1, "typed")
	bad.Status = "maybe"
	assert.Error(t, s.WriteRun(ctx, bad))
}

func TestNextSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seq, err := s.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	require.NoError(t, s.WriteRun(ctx, testRun("a", 1, "typed")))
	require.NoError(t, s.WriteRun(ctx, testRun("b", 7, "typed")))

	seq, err = s.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), seq)
}

func TestReadRunsOrdering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Inserted out of order; ties on seq break by id.
	for _, r := range []Run{
		testRun("c", 2, "typed"),
		testRun("b", 1, "untyped"),
		testRun("a", 2, "typed"),
	} {
		require.NoError(t, s.WriteRun(ctx, r))
	}

	runs, err := s.ReadRuns(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, runIDs(runs))
}

func TestReadRunsFilter(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	failed := testRun("r4", 4, "typed")
	failed.Status = StatusError
	for _, r := range []Run{
		testRun("r1", 1, "typed"),
		testRun("r2", 2, "untyped"),
		testRun("r3", 3, "typed"),
		failed,
	} {
		require.NoError(t, s.WriteRun(ctx, r))
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"r1", "r2", "r3", "r4"}},
		{"typed", Filter{Direction: "typed"}, []string{"r1", "r3", "r4"}},
		{"untyped", Filter{Direction: "untyped"}, []string{"r2"}},
		{"errors", Filter{Status: StatusError}, []string{"r4"}},
		{"limit keeps latest", Filter{Limit: 2}, []string{"r3", "r4"}},
		{"typed limit", Filter{Direction: "typed", Limit: 2}, []string{"r3", "r4"}},
		{"limit above count", Filter{Limit: 10}, []string{"r1", "r2", "r3", "r4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := s.ReadRuns(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, runIDs(runs))
		})
	}
}

func TestReadRunsEmpty(t *testing.T) {
	s := createTestStore(t)
	runs, err := s.ReadRuns(context.Background(), Filter{Direction: "typed"})
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestContentHash(t *testing.T) {
	h := ContentHash(DomainInput, "const x = 1;")
	assert.Len(t, h, 64)
	assert.Equal(t, h, ContentHash(DomainInput, "const x = 1;"))
	assert.NotEqual(t, h, ContentHash(DomainOutput, "const x = 1;"), "domains separate")
	assert.NotEqual(t, h, ContentHash(DomainInput, "const x = 2;"))

	// NFC: precomposed and decomposed forms hash the same.
	assert.Equal(t,
		ContentHash(DomainInput, "const s = \"caf\u00e9\";"),
		ContentHash(DomainInput, "const s = \"cafe\u0301\";"))
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("one", "two")
	assert.Equal(t, "one", gen.Generate())
	assert.Equal(t, "two", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestFixedGeneratorConcurrent(t *testing.T) {
	ids := make([]string, 50)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	gen := NewFixedGenerator(ids...)

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, len(ids))
}

func runIDs(runs []Run) []string {
	ids := make([]string, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	return ids
}
