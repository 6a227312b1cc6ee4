package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/order"
)

// CycleRepository implements order.CycleRepository for SQLite
type CycleRepository struct {
	db *DB
}

// NewCycleRepository creates a new CycleRepository
func NewCycleRepository(db *DB) *CycleRepository {
	return &CycleRepository{db: db}
}

// Create records a production cycle
func (r *CycleRepository) Create(ctx context.Context, tenantID string, c *order.Cycle) error {
	query := `
		INSERT INTO production_cycles (id, tenant_id, order_id, machine_id, recorded_at, defective)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		tenantID,
		c.OrderID,
		c.MachineID,
		c.RecordedAt,
		c.Defective,
	)
	if err != nil {
		return fmt.Errorf("failed to create cycle: %w", err)
	}

	return nil
}

// ListWindow returns a machine's cycles recorded within [from, to]
func (r *CycleRepository) ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]order.Cycle, error) {
	query := `
		SELECT id, tenant_id, order_id, machine_id, recorded_at, defective
		FROM production_cycles
		WHERE tenant_id = ? AND machine_id = ? AND recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, machineID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []order.Cycle
	for rows.Next() {
		var c order.Cycle
		err := rows.Scan(
			&c.ID,
			&c.TenantID,
			&c.OrderID,
			&c.MachineID,
			&c.RecordedAt,
			&c.Defective,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cycle: %w", err)
		}
		cycles = append(cycles, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cycle rows: %w", err)
	}

	return cycles, nil
}
