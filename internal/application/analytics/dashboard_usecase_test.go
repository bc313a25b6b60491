package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mini-erp-api/internal/application/analytics"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

type fakeDashboardRepo struct {
	countProducts int64
	countSales    int64
	revenue       decimal.Decimal
	expenses      decimal.Decimal
	monthly       []repository.MonthlyRevenueRow
	lowStock      []repository.LowStockRow
	topProducts   []repository.TopProductRow

	lowStockThreshold int64
	topProductsLimit  int

	failRevenue error
}

func (f *fakeDashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	return f.countProducts, nil
}
func (f *fakeDashboardRepo) CountSales(ctx context.Context) (int64, error) {
	return f.countSales, nil
}
func (f *fakeDashboardRepo) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	return f.revenue, f.failRevenue
}
func (f *fakeDashboardRepo) SumExpenses(ctx context.Context) (decimal.Decimal, error) {
	return f.expenses, nil
}
func (f *fakeDashboardRepo) MonthlyRevenue(ctx context.Context) ([]repository.MonthlyRevenueRow, error) {
	return f.monthly, nil
}
func (f *fakeDashboardRepo) LowStock(ctx context.Context, threshold int64) ([]repository.LowStockRow, error) {
	f.lowStockThreshold = threshold
	return f.lowStock, nil
}
func (f *fakeDashboardRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductRow, error) {
	f.topProductsLimit = limit
	return f.topProducts, nil
}

func TestGetKPIs(t *testing.T) {
	repo := &fakeDashboardRepo{
		countProducts: 12,
		countSales:    40,
		revenue:       decimal.RequireFromString("1234.50"),
		expenses:      decimal.RequireFromString("300.00"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	kpis, err := uc.GetKPIs(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 12, kpis.TotalProducts)
	assert.EqualValues(t, 40, kpis.TotalSales)
	assert.True(t, kpis.Revenue.Equal(decimal.RequireFromString("1234.50")))
	assert.True(t, kpis.Expenses.Equal(decimal.RequireFromString("300.00")))
}

func TestGetKPIs_FallaUnaConsulta(t *testing.T) {
	repo := &fakeDashboardRepo{failRevenue: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetKPIs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revenue", "el error identifica la consulta que falló")
}

func TestGetSalesChart(t *testing.T) {
	repo := &fakeDashboardRepo{
		monthly: []repository.MonthlyRevenueRow{
			{Month: "2026-07", TotalSales: decimal.RequireFromString("500.00")},
			{Month: "2026-08", TotalSales: decimal.RequireFromString("734.50")},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	chart, err := uc.GetSalesChart(context.Background())
	require.NoError(t, err)
	require.Len(t, chart, 2)
	assert.Equal(t, "2026-07", chart[0].Month)
	assert.True(t, chart[1].TotalSales.Equal(decimal.RequireFromString("734.50")))
}

func TestGetLowStock_UsaUmbralCinco(t *testing.T) {
	repo := &fakeDashboardRepo{
		lowStock: []repository.LowStockRow{{Name: "Sugar 1kg", Quantity: 2}},
	}
	uc := analytics.NewDashboardUseCase(repo)

	rows, err := uc.GetLowStock(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, repo.lowStockThreshold)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sugar 1kg", rows[0].Name)
}

func TestGetTopProducts_UsaLimiteCinco(t *testing.T) {
	repo := &fakeDashboardRepo{
		topProducts: []repository.TopProductRow{
			{ProductName: "Rice 5kg", TotalSold: 90},
			{ProductName: "Milk 1L", TotalSold: 55},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	rows, err := uc.GetTopProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, repo.topProductsLimit)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rice 5kg", rows[0].ProductName)
	assert.EqualValues(t, 90, rows[0].TotalSold)
}

func TestGetSalesChart_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{})
	chart, err := uc.GetSalesChart(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, chart, "lista vacía, no null")
	assert.Empty(t, chart)
}
