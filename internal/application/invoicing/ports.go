package invoicing

import (
	"context"

	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
)

// InvoicePDFGenerator renderiza la factura de una venta como documento PDF.
// Función pura de su entrada: sin acceso a datos ni estado.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, sale *entity.SaleWithProduct) ([]byte, error)
}
