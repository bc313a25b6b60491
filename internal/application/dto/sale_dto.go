package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada de POST /add-sale.
// TaxRate es porcentaje (15 = 15%); si se omite, se asume 0.
type RecordSaleRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
}

// ReviseSaleRequest entrada de PUT /edit-sale/:id.
type ReviseSaleRequest struct {
	Quantity int64           `json:"quantity" validate:"required,gt=0"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// SaleResponse salida de una venta unida con el nombre del producto.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}
