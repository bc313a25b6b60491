package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/jhoicas/mini-erp-api/internal/domain"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// El stock se fija aquí solo por alta/edición administrativa; los descuentos y
// restauraciones por ventas son territorio exclusivo del ledger.
type ProductUseCase struct {
	repo     repository.ProductRepository
	saleRepo repository.SaleRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, saleRepo repository.SaleRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, saleRepo: saleRepo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza nombre, precio y stock de un producto.
// El nuevo precio no afecta ventas ya registradas (unit_price es instantánea).
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Se rechaza con ErrConflict mientras existan
// ventas que lo referencien, para no dejar renglones colgantes en el ledger.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.saleRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
