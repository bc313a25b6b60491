package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs devuelve los indicadores globales.
// GET /dashboard-kpis
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	kpis, err := h.uc.GetKPIs(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(kpis)
}

// GetSalesChart devuelve la serie mensual de ingresos.
// GET /dashboard-sales-chart
func (h *DashboardHandler) GetSalesChart(c *fiber.Ctx) error {
	series, err := h.uc.GetSalesChart(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(series)
}

// GetLowStock devuelve los productos con stock en el umbral de reposición.
// GET /dashboard-low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	items, err := h.uc.GetLowStock(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// GetTopProducts devuelve el ranking de productos por unidades vendidas.
// GET /dashboard/top-products
func (h *DashboardHandler) GetTopProducts(c *fiber.Ctx) error {
	items, err := h.uc.GetTopProducts(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}
