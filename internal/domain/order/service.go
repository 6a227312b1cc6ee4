package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// Service handles production order business logic.
type Service struct {
	orders  Repository
	cycles  CycleRepository
	numbers NumberSource
	links   LinkResolver
	logger  *slog.Logger
}

// NewService creates a new order service.
func NewService(orders Repository, cycles CycleRepository, numbers NumberSource, links LinkResolver, logger *slog.Logger) *Service {
	return &Service{
		orders:  orders,
		cycles:  cycles,
		numbers: numbers,
		links:   links,
		logger:  logger,
	}
}

// CreateRequest describes an order creation request.
type CreateRequest struct {
	ProductID string
	MachineID string
	TargetQty int64
}

// Create opens a new in-progress order. The order number is assigned exactly
// once here, from the sequence service.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Order, error) {
	if strings.TrimSpace(req.ProductID) == "" || strings.TrimSpace(req.MachineID) == "" {
		return nil, ErrInvalidInput
	}
	if req.TargetQty <= 0 {
		return nil, ErrInvalidInput
	}

	link, err := s.links.GetLink(ctx, tenantID, req.ProductID, req.MachineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoMachineLink
		}
		return nil, fmt.Errorf("resolving product-machine link: %w", err)
	}

	ord := &Order{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Number:      s.numbers.Number(ctx, tenantID),
		ProductID:   req.ProductID,
		MachineID:   req.MachineID,
		LinkID:      link.ID,
		TargetQty:   req.TargetQty,
		ProducedQty: 0,
		Status:      StatusInProgress,
		StartedAt:   time.Now(),
	}

	if err := s.orders.Create(ctx, tenantID, ord); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("order created", "tenant", tenantID, "number", ord.Number, "machine", ord.MachineID)
	}
	return ord, nil
}

// Get fetches an order by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Order, error) {
	ord, err := s.orders.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return ord, nil
}

// List returns orders matching the options.
func (s *Service) List(ctx context.Context, tenantID string, opts ListOptions) ([]Order, error) {
	return s.orders.List(ctx, tenantID, opts)
}

// RecordCycle logs one produced unit against an in-progress order, bumps the
// produced quantity, and finishes the order when the target is reached.
func (s *Service) RecordCycle(ctx context.Context, tenantID, orderID string, defective bool) (*Order, error) {
	ord, err := s.Get(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if ord.Status != StatusInProgress {
		return nil, ErrInvalidTransition
	}

	cycle := &Cycle{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		OrderID:    ord.ID,
		MachineID:  ord.MachineID,
		RecordedAt: time.Now(),
		Defective:  defective,
	}
	if err := s.cycles.Create(ctx, tenantID, cycle); err != nil {
		return nil, fmt.Errorf("recording cycle: %w", err)
	}

	produced, err := s.orders.AddProduced(ctx, tenantID, ord.ID, 1)
	if err != nil {
		return nil, fmt.Errorf("incrementing produced quantity: %w", err)
	}
	ord.ProducedQty = produced

	if produced >= ord.TargetQty {
		now := time.Now()
		if err := s.orders.UpdateStatus(ctx, tenantID, ord.ID, StatusFinished, &now); err != nil {
			return nil, fmt.Errorf("finishing order: %w", err)
		}
		ord.Status = StatusFinished
		ord.FinishedAt = &now
		if s.logger != nil {
			s.logger.Info("order reached target", "tenant", tenantID, "number", ord.Number, "produced", produced)
		}
	}

	return ord, nil
}

// Finish closes an in-progress order.
func (s *Service) Finish(ctx context.Context, tenantID, id string) (*Order, error) {
	return s.transition(ctx, tenantID, id, StatusFinished)
}

// Cancel cancels an in-progress order.
func (s *Service) Cancel(ctx context.Context, tenantID, id string) (*Order, error) {
	return s.transition(ctx, tenantID, id, StatusCancelled)
}

func (s *Service) transition(ctx context.Context, tenantID, id string, to Status) (*Order, error) {
	ord, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if ord.Status != StatusInProgress {
		return nil, ErrInvalidTransition
	}

	var finishedAt *time.Time
	if to == StatusFinished {
		now := time.Now()
		finishedAt = &now
	}
	if err := s.orders.UpdateStatus(ctx, tenantID, id, to, finishedAt); err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}
	ord.Status = to
	ord.FinishedAt = finishedAt
	return ord, nil
}
