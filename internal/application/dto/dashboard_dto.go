package dto

import "github.com/shopspring/decimal"

// DashboardKPIsDTO indicadores globales del negocio.
type DashboardKPIsDTO struct {
	TotalProducts int64           `json:"total_products"`
	TotalSales    int64           `json:"total_sales"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
}

// MonthlySalesDTO punto de la serie mensual de ingresos ("YYYY-MM").
type MonthlySalesDTO struct {
	Month      string          `json:"month"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// LowStockDTO producto en o bajo el umbral de reposición.
type LowStockDTO struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// TopProductDTO producto del ranking por unidades vendidas.
type TopProductDTO struct {
	ProductName string `json:"product_name"`
	TotalSold   int64  `json:"total_sold"`
}
