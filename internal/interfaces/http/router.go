package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/analytics"
	"github.com/jhoicas/mini-erp-api/internal/application/invoicing"
	"github.com/jhoicas/mini-erp-api/internal/application/ledger"
	"github.com/jhoicas/mini-erp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	Ledger      *ledger.UseCase
	LedgerQuery *ledger.QueryUseCase
	DashboardUC *analytics.DashboardUseCase
	InvoicePDF  *invoicing.PDFUseCase
}

// Router registra las rutas de la API. Los nombres de ruta son el contrato
// plano heredado del frontend (get-products, add-sale, ...); cambiarlos rompe
// a los clientes existentes.
func Router(app *fiber.App, deps RouterDeps) {
	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/get-products", productHandler.List)
	app.Post("/add-product", productHandler.Create)
	app.Put("/edit-product/:id", productHandler.Update)
	app.Delete("/delete-product/:id", productHandler.Delete)

	// Sales (ledger)
	saleHandler := NewSaleHandler(deps.Ledger, deps.LedgerQuery)
	app.Get("/get-sales", saleHandler.List)
	app.Post("/add-sale", saleHandler.Record)
	app.Put("/edit-sale/:id", saleHandler.Revise)
	app.Delete("/delete-sale/:id", saleHandler.Reverse)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoicePDF)
	app.Get("/invoice/:saleId", invoiceHandler.Download)

	// Expenses
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	app.Get("/get-expenses", expenseHandler.List)
	app.Post("/add-expense", expenseHandler.Create)
	app.Put("/edit-expense/:id", expenseHandler.Update)
	app.Delete("/delete-expense/:id", expenseHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard-kpis", dashboardHandler.GetKPIs)
	app.Get("/dashboard-sales-chart", dashboardHandler.GetSalesChart)
	app.Get("/dashboard-low-stock", dashboardHandler.GetLowStock)
	app.Get("/dashboard/top-products", dashboardHandler.GetTopProducts)
}
