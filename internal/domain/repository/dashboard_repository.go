package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlyRevenueRow ingreso total de un mes calendario ("YYYY-MM").
type MonthlyRevenueRow struct {
	Month      string
	TotalSales decimal.Decimal
}

// LowStockRow producto con stock en o bajo el umbral de reposición.
type LowStockRow struct {
	Name     string
	Quantity int64
}

// TopProductRow producto ordenado por unidades vendidas.
type TopProductRow struct {
	ProductName string
	TotalSold   int64
}

// DashboardRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// CountProducts devuelve el total de productos del catálogo.
	CountProducts(ctx context.Context) (int64, error)
	// CountSales devuelve el total de ventas registradas.
	CountSales(ctx context.Context) (int64, error)
	// SumRevenue devuelve SUM(total) sobre las ventas; cero si no hay filas.
	SumRevenue(ctx context.Context) (decimal.Decimal, error)
	// SumExpenses devuelve SUM(amount) sobre los gastos; cero si no hay filas.
	SumExpenses(ctx context.Context) (decimal.Decimal, error)
	// MonthlyRevenue agrupa el ingreso por mes calendario, ascendente.
	MonthlyRevenue(ctx context.Context) ([]MonthlyRevenueRow, error)
	// LowStock lista productos con quantity <= threshold, stock ascendente.
	LowStock(ctx context.Context, threshold int64) ([]LowStockRow, error)
	// TopProducts devuelve los `limit` productos con más unidades vendidas.
	TopProducts(ctx context.Context, limit int) ([]TopProductRow, error)
}
