package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfgpulse/oeetrack/internal/domain/shift"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// ShiftRepository implements shift.Repository for SQLite
type ShiftRepository struct {
	db *DB
}

// NewShiftRepository creates a new ShiftRepository
func NewShiftRepository(db *DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(ctx context.Context, tenantID string, sh *shift.Shift) error {
	query := `
		INSERT INTO shifts (id, tenant_id, name, start_time, end_time, duration_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var duration sql.NullFloat64
	if sh.DurationHours != nil {
		duration = sql.NullFloat64{Float64: *sh.DurationHours, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		sh.ID,
		tenantID,
		sh.Name,
		sh.StartTime,
		sh.EndTime,
		duration,
		sh.CreatedAt,
		sh.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

// Get retrieves a shift by ID
func (r *ShiftRepository) Get(ctx context.Context, tenantID, id string) (*shift.Shift, error) {
	query := `
		SELECT id, tenant_id, name, start_time, end_time, duration_hours, created_at, updated_at
		FROM shifts
		WHERE id = ? AND tenant_id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id, tenantID)
	sh, err := scanShift(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return sh, nil
}

// Update saves a shift's mutable fields, derived duration included
func (r *ShiftRepository) Update(ctx context.Context, tenantID string, sh *shift.Shift) error {
	query := `
		UPDATE shifts
		SET name = ?, start_time = ?, end_time = ?, duration_hours = ?, updated_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	var duration sql.NullFloat64
	if sh.DurationHours != nil {
		duration = sql.NullFloat64{Float64: *sh.DurationHours, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		sh.Name,
		sh.StartTime,
		sh.EndTime,
		duration,
		sh.UpdatedAt,
		sh.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns the tenant's shifts
func (r *ShiftRepository) List(ctx context.Context, tenantID string) ([]shift.Shift, error) {
	query := `
		SELECT id, tenant_id, name, start_time, end_time, duration_hours, created_at, updated_at
		FROM shifts
		WHERE tenant_id = ?
		ORDER BY start_time ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, *sh)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift rows: %w", err)
	}

	return shifts, nil
}

func scanShift(scan func(dest ...any) error) (*shift.Shift, error) {
	var sh shift.Shift
	var duration sql.NullFloat64
	err := scan(
		&sh.ID,
		&sh.TenantID,
		&sh.Name,
		&sh.StartTime,
		&sh.EndTime,
		&duration,
		&sh.CreatedAt,
		&sh.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if duration.Valid {
		v := duration.Float64
		sh.DurationHours = &v
	}
	return &sh, nil
}
