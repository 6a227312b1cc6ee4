package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
)

// ScrapRepository implements scrap.Repository for SQLite
type ScrapRepository struct {
	db *DB
}

// NewScrapRepository creates a new ScrapRepository
func NewScrapRepository(db *DB) *ScrapRepository {
	return &ScrapRepository{db: db}
}

// Create records a scrap entry
func (r *ScrapRepository) Create(ctx context.Context, tenantID string, e *scrap.Entry) error {
	query := `
		INSERT INTO scrap_entries (id, tenant_id, machine_id, order_id, recorded_at,
			quantity, severity, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var orderID sql.NullString
	if e.OrderID != nil {
		orderID = sql.NullString{String: *e.OrderID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		tenantID,
		e.MachineID,
		orderID,
		e.RecordedAt,
		e.Quantity,
		string(e.Severity),
		e.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to create scrap entry: %w", err)
	}

	return nil
}

// List returns scrap entries for a tenant, optionally filtered by machine
func (r *ScrapRepository) List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]scrap.Entry, error) {
	query := `
		SELECT id, tenant_id, machine_id, order_id, recorded_at, quantity, severity, reason
		FROM scrap_entries
		WHERE tenant_id = ?
	`
	args := []any{tenantID}

	if machineID != "" {
		query += ` AND machine_id = ?`
		args = append(args, machineID)
	}
	query += ` ORDER BY recorded_at DESC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	return r.queryEntries(ctx, query, args...)
}

// ListWindow returns a machine's scrap entries recorded within [from, to]
func (r *ScrapRepository) ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]scrap.Entry, error) {
	query := `
		SELECT id, tenant_id, machine_id, order_id, recorded_at, quantity, severity, reason
		FROM scrap_entries
		WHERE tenant_id = ? AND machine_id = ? AND recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC
	`
	return r.queryEntries(ctx, query, tenantID, machineID, from, to)
}

func (r *ScrapRepository) queryEntries(ctx context.Context, query string, args ...any) ([]scrap.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrap entries: %w", err)
	}
	defer rows.Close()

	var entries []scrap.Entry
	for rows.Next() {
		var e scrap.Entry
		var orderID sql.NullString
		var severity string
		var reason sql.NullString
		err := rows.Scan(
			&e.ID,
			&e.TenantID,
			&e.MachineID,
			&orderID,
			&e.RecordedAt,
			&e.Quantity,
			&severity,
			&reason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scrap entry: %w", err)
		}
		if orderID.Valid {
			s := orderID.String
			e.OrderID = &s
		}
		e.Severity = scrap.Severity(severity)
		e.Reason = reason.String
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scrap rows: %w", err)
	}

	return entries, nil
}
