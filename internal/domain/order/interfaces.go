package order

import (
	"context"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/product"
)

// Repository provides persistence for production orders.
type Repository interface {
	Create(ctx context.Context, tenantID string, ord *Order) error
	Get(ctx context.Context, tenantID, id string) (*Order, error)
	List(ctx context.Context, tenantID string, opts ListOptions) ([]Order, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status Status, finishedAt *time.Time) error
	// AddProduced atomically adds delta to the produced quantity and returns
	// the new value.
	AddProduced(ctx context.Context, tenantID, id string, delta int64) (int64, error)
	LatestForMachine(ctx context.Context, tenantID, machineID string) (*Order, error)
	CountByNumberPrefix(ctx context.Context, tenantID, prefix string) (int64, error)
}

// ListOptions provides filtering options for listing orders.
type ListOptions struct {
	MachineID string
	Status    Status
	Limit     int
	Offset    int
}

// CycleRepository provides persistence for production cycles.
type CycleRepository interface {
	Create(ctx context.Context, tenantID string, c *Cycle) error
	ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]Cycle, error)
}

// NumberSource issues order numbers.
type NumberSource interface {
	Number(ctx context.Context, tenantID string) string
}

// LinkResolver resolves the product-machine link for an order.
type LinkResolver interface {
	GetLink(ctx context.Context, tenantID, productID, machineID string) (*product.MachineLink, error)
}
