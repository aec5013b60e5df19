package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the sequence numbers stamped on every event.
// Events live in one ent table per type, and per-table rowids say nothing
// about cross-type order, so a single shared counter is what lets session,
// answer, and LLM events be replayed as one stream.
//
// The counter is a one-row table updated with RETURNING, raw SQL because
// ent has no atomic-counter primitive. The mutex keeps in-process callers
// from interleaving; the UPDATE itself is atomic in SQLite.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS global_sequence (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	next_val INTEGER NOT NULL DEFAULT 1
)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`); err != nil {
		return nil, fmt.Errorf("seed sequence counter: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves and returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	row := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)
	if err := row.Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
