package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o editar un producto
// (add-product y edit-product comparten cuerpo).
type SaveProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
