package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. IDs como BIGSERIAL.
//
// Política de integridad referencial: las ventas son dueñas exclusivas de sus
// ítems y pagos (ON DELETE CASCADE). Los productos referenciados por entradas
// de stock o ítems de venta no se pueden borrar (RESTRICT): el borrado
// retorna conflicto en lugar de dejar filas huérfanas.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       NUMERIC(12,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS stock_entries (
			id             BIGSERIAL PRIMARY KEY,
			product_id     BIGINT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
			quantity       BIGINT NOT NULL,
			entry_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
			invoice_number VARCHAR(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id                BIGSERIAL PRIMARY KEY,
			code              VARCHAR(50) NOT NULL UNIQUE,
			date              TIMESTAMPTZ NOT NULL DEFAULT now(),
			ship_postal_code  VARCHAR(9),
			ship_street       TEXT,
			ship_number       INT,
			ship_complement   TEXT,
			ship_neighborhood TEXT,
			ship_city         TEXT,
			ship_state        VARCHAR(2)
		)`,
		`CREATE TABLE IF NOT EXISTS sale_items (
			id         BIGSERIAL PRIMARY KEY,
			sale_id    BIGINT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
			quantity   BIGINT NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id      BIGSERIAL PRIMARY KEY,
			sale_id BIGINT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			method  TEXT NOT NULL,
			amount  NUMERIC(12,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_entries_product ON stock_entries(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sale_items_product ON sale_items(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items(sale_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_sale ON payments(sale_id)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
