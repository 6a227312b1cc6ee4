package inventory

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

// Service handles inventory operations. Every write path re-derives the
// status and attention fields; partial updates resolve omitted fields from
// the stored item first so the rules never see partial data.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new inventory service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// CreateRequest defines inventory item creation inputs.
type CreateRequest struct {
	Name       string
	SKU        string
	CurrentQty float64
	MinQty     float64
	MaxQty     *float64
	ExpiryDate *time.Time
}

// PatchRequest defines a partial update. Nil fields are resolved from the
// stored item before the derivation rules run.
type PatchRequest struct {
	Name       *string
	SKU        *string
	CurrentQty *float64
	MinQty     *float64
	MaxQty     *float64
	ExpiryDate *time.Time
	Inactive   *bool
}

// Create registers a new inventory item with derived fields.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Item, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.SKU) == "" {
		return nil, ErrInvalidInput
	}

	now := s.now()
	item := &Item{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		Name:       req.Name,
		SKU:        req.SKU,
		CurrentQty: req.CurrentQty,
		MinQty:     req.MinQty,
		MaxQty:     req.MaxQty,
		ExpiryDate: req.ExpiryDate,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	Derive(item, now)

	if err := s.repo.Create(ctx, tenantID, item); err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}
	return item, nil
}

// Get fetches an inventory item by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Item, error) {
	item, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("getting inventory item: %w", err)
	}
	return item, nil
}

// Patch overlays the provided fields on the stored item, re-derives the
// status and attention fields, and writes the full result back.
func (s *Service) Patch(ctx context.Context, tenantID, id string, req PatchRequest) (*Item, error) {
	item, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		item.Name = *req.Name
	}
	if req.SKU != nil {
		if strings.TrimSpace(*req.SKU) == "" {
			return nil, ErrInvalidInput
		}
		item.SKU = *req.SKU
	}
	if req.CurrentQty != nil {
		item.CurrentQty = *req.CurrentQty
	}
	if req.MinQty != nil {
		item.MinQty = *req.MinQty
	}
	if req.MaxQty != nil {
		item.MaxQty = req.MaxQty
	}
	if req.ExpiryDate != nil {
		item.ExpiryDate = req.ExpiryDate
	}
	if req.Inactive != nil {
		if *req.Inactive {
			item.Status = StatusInactive
		} else {
			item.Status = StatusActive
		}
	}

	now := s.now()
	item.UpdatedAt = now
	Derive(item, now)

	if err := s.repo.Update(ctx, tenantID, item); err != nil {
		return nil, fmt.Errorf("updating inventory item: %w", err)
	}
	return item, nil
}

// Delete removes an inventory item.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("deleting inventory item: %w", err)
	}
	return nil
}

// List returns the tenant's inventory items, optionally only those needing
// attention.
func (s *Service) List(ctx context.Context, tenantID string, attentionOnly bool) ([]Item, error) {
	return s.repo.List(ctx, tenantID, attentionOnly)
}
