package stoppage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// Service handles stoppage logging and classification.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new stoppage service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// LogRequest describes a stoppage to record.
type LogRequest struct {
	MachineID    string
	OrderID      *string
	StartedAt    time.Time
	DurationSecs float64
	Reason       string
}

// Log records a stoppage. A missing or invalid duration is stored as 0 so a
// bad reading never blocks the event from being logged.
func (s *Service) Log(ctx context.Context, tenantID string, req LogRequest) (*Stoppage, error) {
	if strings.TrimSpace(req.MachineID) == "" {
		return nil, ErrInvalidInput
	}

	duration := req.DurationSecs
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		duration = 0
	}
	startedAt := req.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	st := &Stoppage{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		MachineID:    req.MachineID,
		OrderID:      req.OrderID,
		StartedAt:    startedAt,
		DurationSecs: duration,
		Reason:       req.Reason,
		Classified:   strings.TrimSpace(req.Reason) != "",
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, tenantID, st); err != nil {
		return nil, fmt.Errorf("logging stoppage: %w", err)
	}
	return st, nil
}

// Classify assigns a reason to a stoppage and marks it classified.
func (s *Service) Classify(ctx context.Context, tenantID, id, reason string) (*Stoppage, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.repo.Classify(ctx, tenantID, id, reason); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStoppageNotFound
		}
		return nil, fmt.Errorf("classifying stoppage: %w", err)
	}

	st, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("getting stoppage: %w", err)
	}
	return st, nil
}

// List returns stoppages for the tenant, optionally filtered by machine.
func (s *Service) List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]Stoppage, error) {
	return s.repo.List(ctx, tenantID, machineID, limit, offset)
}
