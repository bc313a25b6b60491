package ledger

import (
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

// QueryUseCase lecturas del libro de ventas (fuera de transacción).
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// List devuelve todas las ventas unidas con el nombre del producto,
// más reciente primero.
func (uc *QueryUseCase) List() ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListWithProductName()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSaleResponse(s))
	}
	return items, nil
}

// ToSaleResponse convierte la venta unida a su DTO de salida.
func ToSaleResponse(s *entity.SaleWithProduct) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		Subtotal:    s.Subtotal,
		TaxRate:     s.TaxRate,
		TaxAmount:   s.TaxAmount,
		Total:       s.Total,
		CreatedAt:   s.CreatedAt,
	}
}
