package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/repository"
)

// ProductRepository implements product.Repository for SQLite
type ProductRepository struct {
	db *DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, tenantID string, p *product.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, name, code, unit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		tenantID,
		p.Name,
		p.Code,
		p.Unit,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Get retrieves a product by ID
func (r *ProductRepository) Get(ctx context.Context, tenantID, id string) (*product.Product, error) {
	query := `
		SELECT id, tenant_id, name, code, unit, created_at, updated_at
		FROM products
		WHERE id = ? AND tenant_id = ?
	`

	var p product.Product
	var unit sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.Code,
		&unit,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	p.Unit = unit.String

	return &p, nil
}

// Update saves a product's mutable fields
func (r *ProductRepository) Update(ctx context.Context, tenantID string, p *product.Product) error {
	query := `
		UPDATE products
		SET name = ?, code = ?, unit = ?, updated_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Code,
		p.Unit,
		p.UpdatedAt,
		p.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
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

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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

// List returns all products for a tenant
func (r *ProductRepository) List(ctx context.Context, tenantID string) ([]product.Product, error) {
	query := `
		SELECT id, tenant_id, name, code, unit, created_at, updated_at
		FROM products
		WHERE tenant_id = ?
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		var unit sql.NullString
		err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.Name,
			&p.Code,
			&unit,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Unit = unit.String
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// CreateLink creates a product-machine link
func (r *ProductRepository) CreateLink(ctx context.Context, tenantID string, link *product.MachineLink) error {
	query := `
		INSERT INTO product_machines (id, tenant_id, product_id, machine_id,
			ideal_cycle_time_secs, setup_time_secs, ideal_rate_per_hour, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		link.ID,
		tenantID,
		link.ProductID,
		link.MachineID,
		link.IdealCycleTimeSecs,
		link.SetupTimeSecs,
		link.IdealRatePerHour,
		link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product-machine link: %w", err)
	}

	return nil
}

// GetLink retrieves the link between a product and a machine
func (r *ProductRepository) GetLink(ctx context.Context, tenantID, productID, machineID string) (*product.MachineLink, error) {
	query := `
		SELECT id, tenant_id, product_id, machine_id,
			ideal_cycle_time_secs, setup_time_secs, ideal_rate_per_hour, created_at
		FROM product_machines
		WHERE tenant_id = ? AND product_id = ? AND machine_id = ?
	`

	var link product.MachineLink
	err := r.db.QueryRowContext(ctx, query, tenantID, productID, machineID).Scan(
		&link.ID,
		&link.TenantID,
		&link.ProductID,
		&link.MachineID,
		&link.IdealCycleTimeSecs,
		&link.SetupTimeSecs,
		&link.IdealRatePerHour,
		&link.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product-machine link: %w", err)
	}

	return &link, nil
}

// ListLinks returns all machine links for a product
func (r *ProductRepository) ListLinks(ctx context.Context, tenantID, productID string) ([]product.MachineLink, error) {
	query := `
		SELECT id, tenant_id, product_id, machine_id,
			ideal_cycle_time_secs, setup_time_secs, ideal_rate_per_hour, created_at
		FROM product_machines
		WHERE tenant_id = ? AND product_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product-machine links: %w", err)
	}
	defer rows.Close()

	var links []product.MachineLink
	for rows.Next() {
		var link product.MachineLink
		err := rows.Scan(
			&link.ID,
			&link.TenantID,
			&link.ProductID,
			&link.MachineID,
			&link.IdealCycleTimeSecs,
			&link.SetupTimeSecs,
			&link.IdealRatePerHour,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product-machine link: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}

	return links, nil
}
