package scrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput indicates invalid scrap input.
var ErrInvalidInput = errors.New("invalid scrap input")

// Service handles scrap logging.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new scrap service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// LogRequest describes a scrap entry to record.
type LogRequest struct {
	MachineID  string
	OrderID    *string
	RecordedAt time.Time
	Quantity   float64
	Severity   Severity
	Reason     string
}

// Log records a scrap entry.
func (s *Service) Log(ctx context.Context, tenantID string, req LogRequest) (*Entry, error) {
	if strings.TrimSpace(req.MachineID) == "" || req.Quantity <= 0 {
		return nil, ErrInvalidInput
	}

	severity := req.Severity
	if severity == "" {
		severity = SeverityMedium
	}
	if !severity.Valid() {
		return nil, ErrInvalidInput
	}
	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	e := &Entry{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		MachineID:  req.MachineID,
		OrderID:    req.OrderID,
		RecordedAt: recordedAt,
		Quantity:   req.Quantity,
		Severity:   severity,
		Reason:     req.Reason,
	}

	if err := s.repo.Create(ctx, tenantID, e); err != nil {
		return nil, fmt.Errorf("logging scrap: %w", err)
	}
	return e, nil
}

// List returns scrap entries for the tenant, optionally filtered by machine.
func (s *Service) List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]Entry, error) {
	return s.repo.List(ctx, tenantID, machineID, limit, offset)
}
