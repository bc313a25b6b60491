package ledger

import (
	"context"

	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza Commit si fn devuelve nil y
// Rollback en cualquier otra salida (error, pánico o cancelación del ctx):
// el par (venta, stock) nunca queda parcialmente escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
