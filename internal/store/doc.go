// Package store provides SQLite-backed history of conversion runs.
//
// The store is an append-only log. Each run records one file converted by
// the CLI: its direction, source path, content hashes of input and output,
// and the outcome. Conversions never read from the store; it exists for
// auditing and for the history command.
//
// # Ordering
//
//   - Every run carries seq, a logical clock assigned by NextSeq
//   - All queries order by seq ASC, id ASC COLLATE BINARY
//
// # Identity
//
//   - Run IDs are UUIDv7 strings from an IDGenerator
//   - Content hashes are SHA-256 over NFC-normalized text with a domain
//     prefix, so the same file hashes the same whatever its Unicode form
//
// # Schema
//
// The embedded schema.sql is applied with IF NOT EXISTS on every Open, so a
// database created by any build is usable by any other. Connections run in
// WAL mode with synchronous=NORMAL and a 5 second busy timeout.
package store
