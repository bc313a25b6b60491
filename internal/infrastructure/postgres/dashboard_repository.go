package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard del negocio.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de analítica.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts devuelve el total de productos del catálogo.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// CountSales devuelve el total de ventas registradas.
func (r *DashboardRepo) CountSales(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountSales: %w", err)
	}
	return n, nil
}

// SumRevenue devuelve SUM(total) sobre las ventas.
// Usa COALESCE para devolver cero si no hay filas.
func (r *DashboardRepo) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM sales`).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumRevenue: %w", err)
	}
	return sum, nil
}

// SumExpenses devuelve SUM(amount) sobre los gastos.
func (r *DashboardRepo) SumExpenses(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumExpenses: %w", err)
	}
	return sum, nil
}

// MonthlyRevenue agrupa el ingreso por mes calendario ("YYYY-MM"), ascendente.
func (r *DashboardRepo) MonthlyRevenue(ctx context.Context) ([]repository.MonthlyRevenueRow, error) {
	const query = `
	SELECT
	    to_char(created_at, 'YYYY-MM') AS month,
	    SUM(total)                     AS total_sales
	FROM sales
	GROUP BY month
	ORDER BY month`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.MonthlyRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyRevenueRow
	for rows.Next() {
		var row repository.MonthlyRevenueRow
		if err := rows.Scan(&row.Month, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("dashboard.MonthlyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStock lista productos con quantity <= threshold, stock ascendente.
func (r *DashboardRepo) LowStock(ctx context.Context, threshold int64) ([]repository.LowStockRow, error) {
	const query = `
	SELECT name, quantity
	FROM products
	WHERE quantity <= $1
	ORDER BY quantity ASC`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.Name, &row.Quantity); err != nil {
			return nil, fmt.Errorf("dashboard.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopProducts devuelve los `limit` productos con más unidades vendidas.
func (r *DashboardRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductRow, error) {
	const query = `
	SELECT
	    p.name          AS product_name,
	    SUM(s.quantity) AS total_sold
	FROM sales s
	JOIN products p ON p.id = s.product_id
	GROUP BY s.product_id, p.name
	ORDER BY total_sold DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductName, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("dashboard.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
