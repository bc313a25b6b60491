package invoicing

import (
	"context"
	"fmt"

	"github.com/jhoicas/mini-erp-api/internal/domain"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

// PDFUseCase genera la factura en PDF de una venta.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator}
}

// InvoicePDF carga la venta con su producto y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetWithProductName(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice-%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
