package sequence

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service issues per-tenant, per-year order sequence numbers and formats
// human-readable order numbers from them.
//
// The primary path is a single atomic upsert-increment on the counter store,
// which guarantees distinct consecutive values under concurrent callers.
// When the counter store is unreachable the service degrades, first to
// counting existing orders for the year, then to the trailing digits of the
// current timestamp. Both fallbacks may collide under concurrency; order
// creation is never blocked on the counter.
type Service struct {
	counters CounterRepository
	orders   OrderCounter
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new sequence service.
func NewService(counters CounterRepository, orders OrderCounter, logger *slog.Logger) *Service {
	return &Service{
		counters: counters,
		orders:   orders,
		logger:   logger,
		now:      time.Now,
	}
}

// Next returns the next sequence value for the tenant and year.
func (s *Service) Next(ctx context.Context, tenantID string, year int) int64 {
	key := fmt.Sprintf("%s:%d", tenantID, year)

	seq, err := s.counters.Increment(ctx, key)
	if err == nil {
		return seq
	}
	if s.logger != nil {
		s.logger.Warn("counter store unavailable, falling back to order count",
			"key", key, "error", err)
	}

	if s.orders != nil {
		count, err := s.orders.CountByNumberPrefix(ctx, tenantID, numberPrefix(year))
		if err == nil {
			return count + 1
		}
		if s.logger != nil {
			s.logger.Warn("order count fallback failed, using timestamp",
				"key", key, "error", err)
		}
	}

	// Last resort: non-sequential, may collide. Eight digits keep degraded
	// numbers visually distinct from ordinary counter values, and zero is
	// never issued.
	seq = s.now().UnixNano() % 100000000
	if seq == 0 {
		seq = 1
	}
	return seq
}

// Number issues the next order number for the tenant, formatted as
// "OP" + 4-digit year + zero-padded 4-digit sequence, e.g. OP20250007.
func (s *Service) Number(ctx context.Context, tenantID string) string {
	year := s.now().Year()
	return fmt.Sprintf("%s%04d", numberPrefix(year), s.Next(ctx, tenantID, year))
}

func numberPrefix(year int) string {
	return fmt.Sprintf("OP%04d", year)
}
