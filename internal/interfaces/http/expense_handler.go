package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/application/usecase"
	"github.com/jhoicas/mini-erp-api/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP para Expense.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List devuelve todos los gastos.
// GET /get-expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Create registra un gasto.
// POST /add-expense
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if _, err := h.uc.Create(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "category and amount required"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.OK)
}

// Update edita un gasto.
// PUT /edit-expense/:id
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if _, err := h.uc.Update(c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "category and amount required"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Expense not found"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(dto.OK)
}

// Delete elimina un gasto.
// DELETE /delete-expense/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Expense not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.OK)
}
