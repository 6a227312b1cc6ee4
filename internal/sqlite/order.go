package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// OrderRepository implements order.Repository for SQLite
type OrderRepository struct {
	db *DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, tenant_id, number, product_id, machine_id, link_id,
	target_qty, produced_qty, status, started_at, finished_at`

// Create creates a new production order
func (r *OrderRepository) Create(ctx context.Context, tenantID string, ord *order.Order) error {
	query := `
		INSERT INTO production_orders (` + orderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var finishedAt sql.NullTime
	if ord.FinishedAt != nil {
		finishedAt = sql.NullTime{Time: *ord.FinishedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		ord.ID,
		tenantID,
		ord.Number,
		ord.ProductID,
		ord.MachineID,
		ord.LinkID,
		ord.TargetQty,
		ord.ProducedQty,
		string(ord.Status),
		ord.StartedAt,
		finishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func scanOrder(scan func(dest ...any) error) (*order.Order, error) {
	var ord order.Order
	var status string
	var finishedAt sql.NullTime
	err := scan(
		&ord.ID,
		&ord.TenantID,
		&ord.Number,
		&ord.ProductID,
		&ord.MachineID,
		&ord.LinkID,
		&ord.TargetQty,
		&ord.ProducedQty,
		&status,
		&ord.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}
	ord.Status = order.Status(status)
	if finishedAt.Valid {
		t := finishedAt.Time
		ord.FinishedAt = &t
	}
	return &ord, nil
}

// Get retrieves an order by ID
func (r *OrderRepository) Get(ctx context.Context, tenantID, id string) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE id = ? AND tenant_id = ?`

	row := r.db.QueryRowContext(ctx, query, id, tenantID)
	ord, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return ord, nil
}

// List returns orders matching the options
func (r *OrderRepository) List(ctx context.Context, tenantID string, opts order.ListOptions) ([]order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE tenant_id = ?`
	args := []any{tenantID}

	if opts.MachineID != "" {
		query += ` AND machine_id = ?`
		args = append(args, opts.MachineID)
	}
	if opts.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(opts.Status))
	}
	query += ` ORDER BY started_at DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		ord, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *ord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus transitions an order's status
func (r *OrderRepository) UpdateStatus(ctx context.Context, tenantID, id string, status order.Status, finishedAt *time.Time) error {
	var finished sql.NullTime
	if finishedAt != nil {
		finished = sql.NullTime{Time: *finishedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE production_orders
		SET status = ?, finished_at = ?
		WHERE id = ? AND tenant_id = ?
	`, string(status), finished, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
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

// AddProduced atomically adds delta to the produced quantity and returns the
// new value. The increment and read are a single statement.
func (r *OrderRepository) AddProduced(ctx context.Context, tenantID, id string, delta int64) (int64, error) {
	query := `
		UPDATE production_orders
		SET produced_qty = produced_qty + ?
		WHERE id = ? AND tenant_id = ?
		RETURNING produced_qty
	`

	var produced int64
	err := r.db.QueryRowContext(ctx, query, delta, id, tenantID).Scan(&produced)
	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add produced quantity: %w", err)
	}
	return produced, nil
}

// LatestForMachine returns the machine's most recently started order
func (r *OrderRepository) LatestForMachine(ctx context.Context, tenantID, machineID string) (*order.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM production_orders
		WHERE tenant_id = ? AND machine_id = ?
		ORDER BY started_at DESC
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, tenantID, machineID)
	ord, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}
	return ord, nil
}

// CountByNumberPrefix counts orders whose number starts with prefix
func (r *OrderRepository) CountByNumberPrefix(ctx context.Context, tenantID, prefix string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM production_orders
		WHERE tenant_id = ? AND number LIKE ? || '%'
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, tenantID, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
