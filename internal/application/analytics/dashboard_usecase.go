// Package analytics contiene los casos de uso de lectura para el dashboard
// del negocio. No mantiene invariante alguno: consume instantáneas de las
// tablas que el ledger ya dejó consistentes.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

const (
	lowStockThreshold = 5 // quantity <= 5 dispara el widget de reposición
	topProductsLimit  = 5 // tamaño del ranking de más vendidos
)

// DashboardUseCase genera los agregados del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetKPIs devuelve los cuatro indicadores globales.
//
// Las cuatro consultas corren en paralelo; la primera que falle aborta la
// respuesta completa.
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.DashboardKPIsDTO, error) {
	type result struct {
		field string
		apply func(*dto.DashboardKPIsDTO)
		err   error
	}
	ch := make(chan result, 4)

	go func() {
		n, err := uc.repo.CountProducts(ctx)
		ch <- result{"total_products", func(d *dto.DashboardKPIsDTO) { d.TotalProducts = n }, err}
	}()
	go func() {
		n, err := uc.repo.CountSales(ctx)
		ch <- result{"total_sales", func(d *dto.DashboardKPIsDTO) { d.TotalSales = n }, err}
	}()
	go func() {
		sum, err := uc.repo.SumRevenue(ctx)
		ch <- result{"revenue", func(d *dto.DashboardKPIsDTO) { d.Revenue = sum }, err}
	}()
	go func() {
		sum, err := uc.repo.SumExpenses(ctx)
		ch <- result{"expenses", func(d *dto.DashboardKPIsDTO) { d.Expenses = sum }, err}
	}()

	var kpis dto.DashboardKPIsDTO
	for i := 0; i < 4; i++ {
		r := <-ch
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", r.field, r.err)
		}
		r.apply(&kpis)
	}
	return &kpis, nil
}

// GetSalesChart devuelve la serie mensual de ingresos, ascendente por mes.
func (uc *DashboardUseCase) GetSalesChart(ctx context.Context) ([]dto.MonthlySalesDTO, error) {
	rows, err := uc.repo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", err)
	}
	out := make([]dto.MonthlySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlySalesDTO{Month: r.Month, TotalSales: r.TotalSales})
	}
	return out, nil
}

// GetLowStock lista los productos en o bajo el umbral de reposición.
func (uc *DashboardUseCase) GetLowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	rows, err := uc.repo.LowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{Name: r.Name, Quantity: r.Quantity})
	}
	return out, nil
}

// GetTopProducts devuelve el top 5 de productos por unidades vendidas.
func (uc *DashboardUseCase) GetTopProducts(ctx context.Context) ([]dto.TopProductDTO, error) {
	rows, err := uc.repo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", err)
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{ProductName: r.ProductName, TotalSold: r.TotalSold})
	}
	return out, nil
}
