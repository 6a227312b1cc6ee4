package stoppage

import (
	"context"
	"time"
)

// Repository provides persistence for stoppages.
type Repository interface {
	Create(ctx context.Context, tenantID string, st *Stoppage) error
	Get(ctx context.Context, tenantID, id string) (*Stoppage, error)
	List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]Stoppage, error)
	ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]Stoppage, error)
	Classify(ctx context.Context, tenantID, id, reason string) error
}
