package sequence

import "context"

// CounterRepository provides the atomic per-key counter.
type CounterRepository interface {
	// Increment atomically increments the counter for key, creating it at 1
	// if absent, and returns the new value.
	Increment(ctx context.Context, key string) (int64, error)
}

// OrderCounter counts existing orders for the count-based fallback.
type OrderCounter interface {
	CountByNumberPrefix(ctx context.Context, tenantID, prefix string) (int64, error)
}
