package sqlite

import (
	"context"
	"fmt"
)

// CounterRepository implements the atomic per-key sequence counter.
type CounterRepository struct {
	db *DB
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Increment atomically increments the counter for key, creating it at 1 if
// absent, and returns the new value. The upsert and read are a single
// statement so concurrent callers each observe a distinct value.
func (r *CounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	query := `
		INSERT INTO counters (key, seq) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET seq = seq + 1
		RETURNING seq
	`

	var seq int64
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	return seq, nil
}
