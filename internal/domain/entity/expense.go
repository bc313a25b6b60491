package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto registrado. Sin relación con productos ni ventas.
type Expense struct {
	ID        string
	Category  string
	Amount    decimal.Decimal
	Note      string // opcional
	CreatedAt time.Time
}
