package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/application/ledger"
	"github.com/jhoicas/mini-erp-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP del libro de ventas.
type SaleHandler struct {
	uc    *ledger.UseCase
	query *ledger.QueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *ledger.UseCase, query *ledger.QueryUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, query: query}
}

// List devuelve todas las ventas con el nombre del producto.
// GET /get-sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	items, err := h.query.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Record registra una venta y descuenta stock.
// POST /add-sale
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "product_id and quantity required"})
	}
	_, err := h.uc.RecordSale(c.Context(), ledger.RecordSaleInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		TaxRate:   in.TaxRate,
	})
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(dto.OK)
}

// Revise edita cantidad y tasa de impuesto de una venta, ajustando stock.
// PUT /edit-sale/:id
func (h *SaleHandler) Revise(c *fiber.Ctx) error {
	var in dto.ReviseSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "quantity and tax_rate required"})
	}
	_, err := h.uc.ReviseSale(c.Context(), ledger.ReviseSaleInput{
		SaleID:   c.Params("id"),
		Quantity: in.Quantity,
		TaxRate:  in.TaxRate,
	})
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(dto.OK)
}

// Reverse elimina una venta restaurando el stock.
// DELETE /delete-sale/:id
func (h *SaleHandler) Reverse(c *fiber.Ctx) error {
	if err := h.uc.ReverseSale(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Sale not found"})
		}
		return saleError(c, err)
	}
	return c.JSON(dto.OK)
}

// saleError mapea los errores del ledger al contrato HTTP: violaciones de
// precondición son 400 con mensaje legible; todo lo demás es un 500 genérico
// (el detalle interno no viaja al cliente).
func saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "product_id and quantity required"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Product not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Not enough stock"})
	default:
		return internalError(c, err)
	}
}
