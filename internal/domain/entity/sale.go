package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un renglón del libro de ventas.
//
// UnitPrice es una instantánea del precio del producto al momento de la venta:
// no cambia aunque el producto se reprecie después. Subtotal, TaxAmount y
// Total son campos derivados; toda edición que cambie Quantity o TaxRate debe
// recalcular los tres juntos con SaleAmounts (nunca parcialmente).
type Sale struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal // porcentaje: 15 significa 15%
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}

// SaleWithProduct es una venta unida con el nombre de su producto
// (para listados e impresión de factura).
type SaleWithProduct struct {
	Sale
	ProductName string
}

var hundred = decimal.NewFromInt(100)

// SaleAmounts deriva (subtotal, tax_amount, total) a partir de precio unitario,
// cantidad y tasa de impuesto:
//
//	subtotal   = unit_price × quantity
//	tax_amount = subtotal × tax_rate / 100
//	total      = subtotal + tax_amount
//
// Los valores se guardan con la precisión completa del cálculo; el redondeo a
// dos decimales es solo de presentación.
func SaleAmounts(unitPrice decimal.Decimal, quantity int64, taxRate decimal.Decimal) (subtotal, taxAmount, total decimal.Decimal) {
	subtotal = unitPrice.Mul(decimal.NewFromInt(quantity))
	taxAmount = subtotal.Mul(taxRate).Div(hundred)
	total = subtotal.Add(taxAmount)
	return subtotal, taxAmount, total
}

// Recompute actualiza los campos derivados de la venta de forma consistente.
func (s *Sale) Recompute() {
	s.Subtotal, s.TaxAmount, s.Total = SaleAmounts(s.UnitPrice, s.Quantity, s.TaxRate)
}
