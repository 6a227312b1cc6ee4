package scrap

import (
	"context"
	"time"
)

// Repository provides persistence for scrap entries.
type Repository interface {
	Create(ctx context.Context, tenantID string, e *Entry) error
	List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]Entry, error)
	ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]Entry, error)
}
