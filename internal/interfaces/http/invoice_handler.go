package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/application/invoicing"
	"github.com/jhoicas/mini-erp-api/internal/domain"
)

// InvoiceHandler maneja la descarga de facturas en PDF.
type InvoiceHandler struct {
	uc *invoicing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoicing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Download genera la factura de una venta y la sirve inline.
// GET /invoice/:saleId
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.InvoicePDF(c.Context(), c.Params("saleId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invoice not found"})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", filename))
	return c.Send(pdfBytes)
}
