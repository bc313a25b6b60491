package repository

import (
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; el lock se sostiene hasta el commit.
	GetByIDForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity fija el stock del producto. Lo usa exclusivamente el ledger
	// de ventas dentro de una transacción con la fila bloqueada.
	UpdateQuantity(productID string, quantity int64) error
	Delete(id string) error
}
