package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveExpenseRequest entrada para crear o editar un gasto.
type SaveExpenseRequest struct {
	Category string          `json:"category" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
