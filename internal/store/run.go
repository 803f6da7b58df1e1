package store

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Run outcomes.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Domain prefixes for content hashes. The version suffix leaves room for a
// future algorithm change.
const (
	DomainInput  = "typeshift/input/v1"
	DomainOutput = "typeshift/output/v1"
)

// Run is one recorded conversion of one file.
type Run struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Direction  string `json:"direction"`
	Source     string `json:"source"`
	InputHash  string `json:"input_hash"`
	OutputHash string `json:"output_hash,omitempty"`
	Status     string `json:"status"`
	ErrorCode  string `json:"error_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ContentHash hashes source text under a domain prefix.
// Format: SHA256(domain + 0x00 + NFC(text)), hex encoded.
func ContentHash(domain, text string) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write([]byte(norm.NFC.String(text)))
	return hex.EncodeToString(h.Sum(nil))
}

// IDGenerator produces run IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined IDs in order, for tests.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
// Panics if all IDs have been consumed.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
