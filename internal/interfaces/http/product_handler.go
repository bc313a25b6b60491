package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/application/usecase"
	"github.com/jhoicas/mini-erp-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List devuelve todos los productos.
// GET /get-products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Create crea un producto.
// POST /add-product
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if _, err := h.uc.Create(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, price and quantity required"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.OK)
}

// Update edita nombre, precio y stock de un producto.
// PUT /edit-product/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if _, err := h.uc.Update(c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, price and quantity required"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(dto.OK)
}

// Delete elimina un producto sin ventas asociadas.
// DELETE /delete-product/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "product has recorded sales"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(dto.OK)
}
