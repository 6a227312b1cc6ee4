package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// InventoryRepository implements inventory.Repository for SQLite
type InventoryRepository struct {
	db *DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, tenant_id, name, sku, current_qty, min_qty, max_qty,
	expiry_date, status, needs_attention, attention_reason, created_at, updated_at`

// Create creates a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, tenantID string, item *inventory.Item) error {
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	maxQty, expiry := inventoryNullables(item)
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		tenantID,
		item.Name,
		item.SKU,
		item.CurrentQty,
		item.MinQty,
		maxQty,
		expiry,
		string(item.Status),
		item.NeedsAttention,
		item.AttentionReason,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	return nil
}

// Get retrieves an inventory item by ID
func (r *InventoryRepository) Get(ctx context.Context, tenantID, id string) (*inventory.Item, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = ? AND tenant_id = ?`

	row := r.db.QueryRowContext(ctx, query, id, tenantID)
	item, err := scanInventoryItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// Update writes the full field set of an inventory item, derived fields
// included
func (r *InventoryRepository) Update(ctx context.Context, tenantID string, item *inventory.Item) error {
	query := `
		UPDATE inventory_items
		SET name = ?, sku = ?, current_qty = ?, min_qty = ?, max_qty = ?,
			expiry_date = ?, status = ?, needs_attention = ?, attention_reason = ?,
			updated_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	maxQty, expiry := inventoryNullables(item)
	result, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.SKU,
		item.CurrentQty,
		item.MinQty,
		maxQty,
		expiry,
		string(item.Status),
		item.NeedsAttention,
		item.AttentionReason,
		item.UpdatedAt,
		item.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
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

// Delete removes an inventory item
func (r *InventoryRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM inventory_items WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
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

// List returns the tenant's inventory items
func (r *InventoryRepository) List(ctx context.Context, tenantID string, attentionOnly bool) ([]inventory.Item, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = ?`
	if attentionOnly {
		query += ` AND needs_attention = 1`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		item, err := scanInventoryItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return items, nil
}

func inventoryNullables(item *inventory.Item) (sql.NullFloat64, sql.NullTime) {
	var maxQty sql.NullFloat64
	if item.MaxQty != nil {
		maxQty = sql.NullFloat64{Float64: *item.MaxQty, Valid: true}
	}
	var expiry sql.NullTime
	if item.ExpiryDate != nil {
		expiry = sql.NullTime{Time: *item.ExpiryDate, Valid: true}
	}
	return maxQty, expiry
}

func scanInventoryItem(scan func(dest ...any) error) (*inventory.Item, error) {
	var item inventory.Item
	var maxQty sql.NullFloat64
	var expiry sql.NullTime
	var status string
	var reason sql.NullString
	err := scan(
		&item.ID,
		&item.TenantID,
		&item.Name,
		&item.SKU,
		&item.CurrentQty,
		&item.MinQty,
		&maxQty,
		&expiry,
		&status,
		&item.NeedsAttention,
		&reason,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if maxQty.Valid {
		v := maxQty.Float64
		item.MaxQty = &v
	}
	if expiry.Valid {
		t := expiry.Time
		item.ExpiryDate = &t
	}
	item.Status = inventory.Status(status)
	item.AttentionReason = reason.String
	return &item, nil
}
