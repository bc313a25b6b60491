package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Idempotente; se ejecuta en el
// arranque antes de aceptar tráfico.
//
// El CHECK (quantity >= 0) en products es la última línea de defensa del
// invariante de stock: el ledger lo valida antes, pero el constraint hace que
// una escritura negativa falle la transacción en vez de persistir.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS products (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		price      NUMERIC(14,4) NOT NULL DEFAULT 0,
		quantity   BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS sales (
		id         UUID PRIMARY KEY,
		product_id UUID NOT NULL,
		quantity   BIGINT NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(14,4) NOT NULL,
		subtotal   NUMERIC(18,6) NOT NULL,
		tax_rate   NUMERIC(7,4) NOT NULL DEFAULT 0,
		tax_amount NUMERIC(18,6) NOT NULL,
		total      NUMERIC(18,6) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales (product_id);
	CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales (created_at);

	CREATE TABLE IF NOT EXISTS expenses (
		id         UUID PRIMARY KEY,
		category   TEXT NOT NULL,
		amount     NUMERIC(18,6) NOT NULL,
		note       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
