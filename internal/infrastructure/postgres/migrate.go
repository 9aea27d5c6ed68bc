package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente aplicado al arranque.
//
// stock_movements.item_id no lleva FK a stock_items a propósito: el libro es
// histórico y debe sobrevivir al borrado del ítem (queda el nombre cacheado
// en item_name para display). El CHECK de current_stock respalda en la BD el
// invariante de no-negatividad que el motor de movimientos ya garantiza.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS stock_items (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		category       TEXT NOT NULL CHECK (category IN ('Ingredients', 'Products', 'Packaging')),
		current_stock  NUMERIC NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
		unit           TEXT NOT NULL,
		min_stock      NUMERIC NOT NULL DEFAULT 0,
		max_stock      NUMERIC NOT NULL DEFAULT 0,
		reorder_point  NUMERIC NOT NULL DEFAULT 0,
		supplier       TEXT NOT NULL DEFAULT '',
		cost_per_unit  NUMERIC NOT NULL DEFAULT 0,
		last_restocked TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id             TEXT PRIMARY KEY,
		item_id        TEXT NOT NULL,
		item_name      TEXT NOT NULL,
		type           TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
		quantity       NUMERIC NOT NULL CHECK (quantity > 0),
		previous_stock NUMERIC NOT NULL,
		new_stock      NUMERIC NOT NULL,
		date           TIMESTAMPTZ NOT NULL,
		reference      TEXT NOT NULL,
		user_id        TEXT,
		reason         TEXT NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		supplier       TEXT NOT NULL DEFAULT '',
		batch_number   TEXT NOT NULL DEFAULT '',
		expiry_date    TIMESTAMPTZ,
		purchase_price NUMERIC,
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_date ON stock_movements (date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_item ON stock_movements (item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_items_name ON stock_items (name)`,
}

// Migrate aplica el esquema (CREATE IF NOT EXISTS, seguro de re-ejecutar).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
