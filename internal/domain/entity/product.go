package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity es el stock disponible; solo el libro de ventas (ledger) lo muta y
// nunca puede quedar negativo. Price es el precio de venta vigente, editable
// por administración sin afectar ventas ya registradas.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
