package repository

import (
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate obtiene la venta bloqueando su fila (SELECT FOR UPDATE).
	GetByIDForUpdate(id string) (*entity.Sale, error)
	// GetWithProductName obtiene una venta unida con el nombre de su producto
	// (entrada del renderizador de facturas).
	GetWithProductName(id string) (*entity.SaleWithProduct, error)
	// ListWithProductName lista las ventas unidas con el nombre del producto,
	// más reciente primero.
	ListWithProductName() ([]*entity.SaleWithProduct, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
	// CountByProduct cuenta las ventas que referencian un producto
	// (política de borrado de productos).
	CountByProduct(productID string) (int64, error)
}
