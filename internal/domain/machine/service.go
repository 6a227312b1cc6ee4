package machine

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

// Service handles machine operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new machine service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines machine creation inputs.
type CreateRequest struct {
	Name     string
	Code     string
	Location string
}

// UpdateRequest defines machine update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	Name     *string
	Code     *string
	Location *string
	Active   *bool
}

// Create registers a new machine.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Machine, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	m := &Machine{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      req.Name,
		Code:      req.Code,
		Location:  req.Location,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, tenantID, m); err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	return m, nil
}

// Get fetches a machine by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Machine, error) {
	m, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("getting machine: %w", err)
	}
	return m, nil
}

// Update applies the provided fields to a stored machine.
func (s *Service) Update(ctx context.Context, tenantID, id string, req UpdateRequest) (*Machine, error) {
	m, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		m.Name = *req.Name
	}
	if req.Code != nil {
		if strings.TrimSpace(*req.Code) == "" {
			return nil, ErrInvalidInput
		}
		m.Code = *req.Code
	}
	if req.Location != nil {
		m.Location = *req.Location
	}
	if req.Active != nil {
		m.Active = *req.Active
	}
	m.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tenantID, m); err != nil {
		return nil, fmt.Errorf("updating machine: %w", err)
	}
	return m, nil
}

// Delete removes a machine.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMachineNotFound
		}
		return fmt.Errorf("deleting machine: %w", err)
	}
	return nil
}

// List returns the tenant's machines.
func (s *Service) List(ctx context.Context, tenantID string, activeOnly bool) ([]Machine, error) {
	return s.repo.List(ctx, tenantID, activeOnly)
}
