package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; funnel all access through one
	// connection so concurrent writes queue instead of failing with BUSY.
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Machines table
CREATE TABLE IF NOT EXISTS machines (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    code TEXT NOT NULL,
    location TEXT,
    active INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tenant_machines ON machines(tenant_id);

-- Products table
CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    code TEXT NOT NULL,
    unit TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tenant_products ON products(tenant_id);

-- Product-machine links carrying production parameters
CREATE TABLE IF NOT EXISTS product_machines (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    machine_id TEXT NOT NULL,
    ideal_cycle_time_secs REAL NOT NULL DEFAULT 0,
    setup_time_secs REAL NOT NULL DEFAULT 0,
    ideal_rate_per_hour REAL NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (tenant_id, product_id, machine_id),
    FOREIGN KEY (product_id) REFERENCES products(id),
    FOREIGN KEY (machine_id) REFERENCES machines(id)
);
CREATE INDEX IF NOT EXISTS idx_tenant_links ON product_machines(tenant_id);

-- Per-tenant, per-year order sequence counters
CREATE TABLE IF NOT EXISTS counters (
    key TEXT PRIMARY KEY,
    seq INTEGER NOT NULL DEFAULT 0
);

-- Production orders table
CREATE TABLE IF NOT EXISTS production_orders (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    number TEXT NOT NULL,
    product_id TEXT NOT NULL,
    machine_id TEXT NOT NULL,
    link_id TEXT NOT NULL,
    target_qty INTEGER NOT NULL,
    produced_qty INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL CHECK(status IN ('in_progress', 'finished', 'cancelled')),
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    UNIQUE (tenant_id, number),
    FOREIGN KEY (product_id) REFERENCES products(id),
    FOREIGN KEY (machine_id) REFERENCES machines(id),
    FOREIGN KEY (link_id) REFERENCES product_machines(id)
);
CREATE INDEX IF NOT EXISTS idx_tenant_orders ON production_orders(tenant_id);
CREATE INDEX IF NOT EXISTS idx_machine_orders ON production_orders(machine_id);
CREATE INDEX IF NOT EXISTS idx_order_status ON production_orders(status);

-- Production cycles: one row per produced unit
CREATE TABLE IF NOT EXISTS production_cycles (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    order_id TEXT NOT NULL,
    machine_id TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL,
    defective INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (order_id) REFERENCES production_orders(id),
    FOREIGN KEY (machine_id) REFERENCES machines(id)
);
CREATE INDEX IF NOT EXISTS idx_tenant_cycles ON production_cycles(tenant_id);
CREATE INDEX IF NOT EXISTS idx_machine_cycles ON production_cycles(machine_id, recorded_at);

-- Stoppages table
CREATE TABLE IF NOT EXISTS stoppages (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    machine_id TEXT NOT NULL,
    order_id TEXT,
    started_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP NOT NULL,
    duration_secs REAL NOT NULL DEFAULT 0,
    reason TEXT,
    classified INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (machine_id) REFERENCES machines(id),
    FOREIGN KEY (order_id) REFERENCES production_orders(id)
);
CREATE INDEX IF NOT EXISTS idx_tenant_stoppages ON stoppages(tenant_id);
CREATE INDEX IF NOT EXISTS idx_machine_stoppages ON stoppages(machine_id, started_at);

-- Scrap entries table
CREATE TABLE IF NOT EXISTS scrap_entries (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    machine_id TEXT NOT NULL,
    order_id TEXT,
    recorded_at TIMESTAMP NOT NULL,
    quantity REAL NOT NULL,
    severity TEXT NOT NULL CHECK(severity IN ('low', 'medium', 'high')),
    reason TEXT,
    FOREIGN KEY (machine_id) REFERENCES machines(id),
    FOREIGN KEY (order_id) REFERENCES production_orders(id)
);
CREATE INDEX IF NOT EXISTS idx_tenant_scrap ON scrap_entries(tenant_id);
CREATE INDEX IF NOT EXISTS idx_machine_scrap ON scrap_entries(machine_id, recorded_at);

-- Inventory items table
CREATE TABLE IF NOT EXISTS inventory_items (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    sku TEXT NOT NULL,
    current_qty REAL NOT NULL DEFAULT 0,
    min_qty REAL NOT NULL DEFAULT 0,
    max_qty REAL,
    expiry_date TIMESTAMP,
    status TEXT NOT NULL CHECK(status IN ('active', 'inactive', 'depleted', 'expired')),
    needs_attention INTEGER NOT NULL DEFAULT 0,
    attention_reason TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tenant_inventory ON inventory_items(tenant_id);

-- Shifts table
CREATE TABLE IF NOT EXISTS shifts (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    duration_hours REAL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tenant_shifts ON shifts(tenant_id);

-- API keys for authentication
CREATE TABLE IF NOT EXISTS api_keys (
    key_hash TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX IF NOT EXISTS idx_tenant_keys ON api_keys(tenant_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
