package repository

import (
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List() ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
