package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// StoppageRepository implements stoppage.Repository for SQLite
type StoppageRepository struct {
	db *DB
}

// NewStoppageRepository creates a new StoppageRepository
func NewStoppageRepository(db *DB) *StoppageRepository {
	return &StoppageRepository{db: db}
}

// Create records a stoppage
func (r *StoppageRepository) Create(ctx context.Context, tenantID string, st *stoppage.Stoppage) error {
	query := `
		INSERT INTO stoppages (id, tenant_id, machine_id, order_id, started_at,
			ended_at, duration_secs, reason, classified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var orderID sql.NullString
	if st.OrderID != nil {
		orderID = sql.NullString{String: *st.OrderID, Valid: true}
	}

	endedAt := st.StartedAt.Add(time.Duration(st.DurationSecs * float64(time.Second)))
	_, err := r.db.ExecContext(ctx, query,
		st.ID,
		tenantID,
		st.MachineID,
		orderID,
		st.StartedAt,
		endedAt,
		st.DurationSecs,
		st.Reason,
		st.Classified,
		st.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create stoppage: %w", err)
	}

	return nil
}

func scanStoppage(scan func(dest ...any) error) (*stoppage.Stoppage, error) {
	var st stoppage.Stoppage
	var orderID sql.NullString
	var reason sql.NullString
	err := scan(
		&st.ID,
		&st.TenantID,
		&st.MachineID,
		&orderID,
		&st.StartedAt,
		&st.DurationSecs,
		&reason,
		&st.Classified,
		&st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if orderID.Valid {
		s := orderID.String
		st.OrderID = &s
	}
	st.Reason = reason.String
	return &st, nil
}

const stoppageColumns = `id, tenant_id, machine_id, order_id, started_at,
	duration_secs, reason, classified, created_at`

// Get retrieves a stoppage by ID
func (r *StoppageRepository) Get(ctx context.Context, tenantID, id string) (*stoppage.Stoppage, error) {
	query := `SELECT ` + stoppageColumns + ` FROM stoppages WHERE id = ? AND tenant_id = ?`

	row := r.db.QueryRowContext(ctx, query, id, tenantID)
	st, err := scanStoppage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stoppage: %w", err)
	}
	return st, nil
}

// List returns stoppages for a tenant, optionally filtered by machine
func (r *StoppageRepository) List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]stoppage.Stoppage, error) {
	query := `SELECT ` + stoppageColumns + ` FROM stoppages WHERE tenant_id = ?`
	args := []any{tenantID}

	if machineID != "" {
		query += ` AND machine_id = ?`
		args = append(args, machineID)
	}
	query += ` ORDER BY started_at DESC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	return r.queryStoppages(ctx, query, args...)
}

// ListWindow returns a machine's stoppages overlapping [from, to]
func (r *StoppageRepository) ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]stoppage.Stoppage, error) {
	// A stoppage overlaps the window when it starts before the window ends
	// and ends after the window starts, however long it runs. Durations are
	// clipped to the window by the caller.
	query := `
		SELECT ` + stoppageColumns + `
		FROM stoppages
		WHERE tenant_id = ? AND machine_id = ? AND started_at <= ? AND ended_at >= ?
		ORDER BY started_at ASC
	`
	return r.queryStoppages(ctx, query, tenantID, machineID, to, from)
}

// Classify assigns a reason and marks the stoppage classified
func (r *StoppageRepository) Classify(ctx context.Context, tenantID, id, reason string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE stoppages
		SET reason = ?, classified = 1
		WHERE id = ? AND tenant_id = ?
	`, reason, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to classify stoppage: %w", err)
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

func (r *StoppageRepository) queryStoppages(ctx context.Context, query string, args ...any) ([]stoppage.Stoppage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stoppages: %w", err)
	}
	defer rows.Close()

	var stoppages []stoppage.Stoppage
	for rows.Next() {
		st, err := scanStoppage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stoppage: %w", err)
		}
		stoppages = append(stoppages, *st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stoppage rows: %w", err)
	}

	return stoppages, nil
}
