package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/domain"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD para gastos. Sin invariantes más allá de la
// validación de entrada: no toca productos ni ventas.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(in dto.SaveExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Category == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Amount:    in.Amount,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista los gastos, más reciente primero.
func (uc *ExpenseUseCase) List() ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return items, nil
}

// Update edita categoría, monto y nota de un gasto.
func (uc *ExpenseUseCase) Update(id string, in dto.SaveExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Category == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	expense.Category = in.Category
	expense.Amount = in.Amount
	expense.Note = in.Note
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		Amount:    e.Amount,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
