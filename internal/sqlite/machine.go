package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// MachineRepository implements machine.Repository for SQLite
type MachineRepository struct {
	db *DB
}

// NewMachineRepository creates a new MachineRepository
func NewMachineRepository(db *DB) *MachineRepository {
	return &MachineRepository{db: db}
}

// Create creates a new machine
func (r *MachineRepository) Create(ctx context.Context, tenantID string, m *machine.Machine) error {
	query := `
		INSERT INTO machines (id, tenant_id, name, code, location, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		tenantID,
		m.Name,
		m.Code,
		m.Location,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create machine: %w", err)
	}

	return nil
}

// Get retrieves a machine by ID
func (r *MachineRepository) Get(ctx context.Context, tenantID, id string) (*machine.Machine, error) {
	query := `
		SELECT id, tenant_id, name, code, location, active, created_at, updated_at
		FROM machines
		WHERE id = ? AND tenant_id = ?
	`

	var m machine.Machine
	var location sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&m.ID,
		&m.TenantID,
		&m.Name,
		&m.Code,
		&location,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get machine: %w", err)
	}
	m.Location = location.String

	return &m, nil
}

// Update saves a machine's mutable fields
func (r *MachineRepository) Update(ctx context.Context, tenantID string, m *machine.Machine) error {
	query := `
		UPDATE machines
		SET name = ?, code = ?, location = ?, active = ?, updated_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		m.Name,
		m.Code,
		m.Location,
		m.Active,
		m.UpdatedAt,
		m.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update machine: %w", err)
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

// Delete removes a machine
func (r *MachineRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM machines WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete machine: %w", err)
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

// List returns all machines for a tenant
func (r *MachineRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]machine.Machine, error) {
	query := `
		SELECT id, tenant_id, name, code, location, active, created_at, updated_at
		FROM machines
		WHERE tenant_id = ?
	`
	if activeOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	defer rows.Close()

	var machines []machine.Machine
	for rows.Next() {
		var m machine.Machine
		var location sql.NullString
		err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.Name,
			&m.Code,
			&location,
			&m.Active,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machine: %w", err)
		}
		m.Location = location.String
		machines = append(machines, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating machine rows: %w", err)
	}

	return machines, nil
}
