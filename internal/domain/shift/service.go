package shift

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

// Service handles shift operations. The duration is recomputed whenever
// either time field changes; patches resolve the untouched field from the
// stored shift first.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new shift service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines shift creation inputs.
type CreateRequest struct {
	Name      string
	StartTime string
	EndTime   string
}

// PatchRequest defines a partial shift update.
type PatchRequest struct {
	Name      *string
	StartTime *string
	EndTime   *string
}

// Create registers a new shift with its derived duration.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Shift, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	sh := &Shift{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyDuration(sh)

	if err := s.repo.Create(ctx, tenantID, sh); err != nil {
		return nil, fmt.Errorf("creating shift: %w", err)
	}
	return sh, nil
}

// Get fetches a shift by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Shift, error) {
	sh, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("getting shift: %w", err)
	}
	return sh, nil
}

// Patch overlays the provided fields on the stored shift and recomputes the
// duration from the merged start and end times.
func (s *Service) Patch(ctx context.Context, tenantID, id string, req PatchRequest) (*Shift, error) {
	sh, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.StartTime != nil || req.EndTime != nil {
		applyDuration(sh)
	}
	sh.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tenantID, sh); err != nil {
		return nil, fmt.Errorf("updating shift: %w", err)
	}
	return sh, nil
}

// List returns the tenant's shifts.
func (s *Service) List(ctx context.Context, tenantID string) ([]Shift, error) {
	return s.repo.List(ctx, tenantID)
}

func applyDuration(sh *Shift) {
	if hours, ok := ComputeDuration(sh.StartTime, sh.EndTime); ok {
		sh.DurationHours = &hours
	} else {
		sh.DurationHours = nil
	}
}
