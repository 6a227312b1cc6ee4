package oee

import (
	"context"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
)

// MachineSource lists and resolves machines for reporting.
type MachineSource interface {
	Get(ctx context.Context, tenantID, id string) (*machine.Machine, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]machine.Machine, error)
}

// OrderSource resolves the machine's current order for the ideal cycle time.
type OrderSource interface {
	LatestForMachine(ctx context.Context, tenantID, machineID string) (*order.Order, error)
}

// CycleSource loads production cycles for a machine and window.
type CycleSource interface {
	ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]order.Cycle, error)
}

// StoppageSource loads stoppages for a machine and window.
type StoppageSource interface {
	ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]stoppage.Stoppage, error)
}

// ScrapSource loads scrap entries for a machine and window.
type ScrapSource interface {
	ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]scrap.Entry, error)
}

// LinkSource resolves product-machine links for the ideal cycle time.
type LinkSource interface {
	GetLink(ctx context.Context, tenantID, productID, machineID string) (*product.MachineLink, error)
}
