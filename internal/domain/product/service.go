package product

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

// Service handles product operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new product service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines product creation inputs.
type CreateRequest struct {
	Name string
	Code string
	Unit string
}

// UpdateRequest defines product update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	Name *string
	Code *string
	Unit *string
}

// LinkRequest defines product-machine link creation inputs.
type LinkRequest struct {
	MachineID          string
	IdealCycleTimeSecs float64
	SetupTimeSecs      float64
	IdealRatePerHour   float64
}

// Create registers a new product.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	p := &Product{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      req.Name,
		Code:      req.Code,
		Unit:      req.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, tenantID, p); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return p, nil
}

// Get fetches a product by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Product, error) {
	p, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// Update applies the provided fields to a stored product.
func (s *Service) Update(ctx context.Context, tenantID, id string, req UpdateRequest) (*Product, error) {
	p, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		p.Name = *req.Name
	}
	if req.Code != nil {
		if strings.TrimSpace(*req.Code) == "" {
			return nil, ErrInvalidInput
		}
		p.Code = *req.Code
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tenantID, p); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	return p, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

// List returns the tenant's products.
func (s *Service) List(ctx context.Context, tenantID string) ([]Product, error) {
	return s.repo.List(ctx, tenantID)
}

// Link binds a product to a machine with its production parameters.
func (s *Service) Link(ctx context.Context, tenantID, productID string, req LinkRequest) (*MachineLink, error) {
	if strings.TrimSpace(req.MachineID) == "" {
		return nil, ErrInvalidInput
	}
	if req.IdealCycleTimeSecs < 0 || req.SetupTimeSecs < 0 || req.IdealRatePerHour < 0 {
		return nil, ErrInvalidInput
	}

	if _, err := s.Get(ctx, tenantID, productID); err != nil {
		return nil, err
	}

	link := &MachineLink{
		ID:                 uuid.NewString(),
		TenantID:           tenantID,
		ProductID:          productID,
		MachineID:          req.MachineID,
		IdealCycleTimeSecs: req.IdealCycleTimeSecs,
		SetupTimeSecs:      req.SetupTimeSecs,
		IdealRatePerHour:   req.IdealRatePerHour,
		CreatedAt:          time.Now(),
	}

	if err := s.repo.CreateLink(ctx, tenantID, link); err != nil {
		return nil, fmt.Errorf("creating product-machine link: %w", err)
	}
	return link, nil
}

// Links returns all machine links of a product.
func (s *Service) Links(ctx context.Context, tenantID, productID string) ([]MachineLink, error) {
	return s.repo.ListLinks(ctx, tenantID, productID)
}
