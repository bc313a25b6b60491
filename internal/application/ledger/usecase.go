// Package ledger implementa el libro de ventas: las tres operaciones que
// mutan (stock del producto, renglón de venta) como una sola unidad
// transaccional. Invariantes que sostiene:
//
//   - product.quantity >= 0 después de cada operación confirmada;
//   - subtotal, tax_amount y total de cada venta son siempre derivables de
//     unit_price, quantity y tax_rate (se recalculan juntos, nunca a medias);
//   - una venta nunca se crea, edita o borra sin el ajuste de stock
//     correspondiente en la misma transacción.
//
// La serialización por producto la da el lock de fila (SELECT FOR UPDATE):
// dos ventas concurrentes del mismo producto se encolan, y la segunda observa
// el stock ya descontado por la primera antes de validar disponibilidad.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/mini-erp-api/internal/domain"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

// UseCase registra, revisa y reversa ventas de forma transaccional.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// RecordSaleInput entrada para registrar una venta.
// TaxRate nil equivale a 0 (venta sin impuesto).
type RecordSaleInput struct {
	ProductID string
	Quantity  int64
	TaxRate   *decimal.Decimal
}

// ReviseSaleInput entrada para editar una venta existente.
type ReviseSaleInput struct {
	SaleID   string
	Quantity int64
	TaxRate  decimal.Decimal
}

// RecordSale crea una venta y descuenta stock en una sola transacción.
//
// Protocolo: bloquea la fila del producto, valida existencia y disponibilidad,
// toma la instantánea unit_price = product.price, deriva los montos, inserta
// la venta y resta la cantidad del stock. Cualquier fallo revierte ambas
// escrituras.
func (uc *UseCase) RecordSale(ctx context.Context, in RecordSaleInput) (*entity.Sale, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	taxRate := decimal.Zero
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	if taxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		// Lock de fila: serializa Record/Revise/Reverse sobre el mismo producto
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		subtotal, taxAmount, total := entity.SaleAmounts(product.Price, in.Quantity, taxRate)
		sale = &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: product.Price, // instantánea: inmutable ante repreciaciones
			Subtotal:  subtotal,
			TaxRate:   taxRate,
			TaxAmount: taxAmount,
			Total:     total,
			CreatedAt: now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(product.ID, product.Quantity-in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// ReviseSale edita cantidad y tasa de impuesto de una venta, ajustando el
// stock por la diferencia.
//
// difference = quantity_nueva − quantity_vieja: positiva consume más stock,
// negativa lo devuelve. El precio unitario se relee del producto actual:
// la edición reprecia la venta, a diferencia de la instantánea tomada al
// crearla (comportamiento que el frontend ya espera). Los cinco campos
// afectados se reescriben juntos.
func (uc *UseCase) ReviseSale(ctx context.Context, in ReviseSaleInput) (*entity.Sale, error) {
	if in.SaleID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var revised *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(in.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByIDForUpdate(sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		difference := in.Quantity - sale.Quantity
		if product.Quantity < difference {
			return domain.ErrInsufficientStock
		}

		sale.Quantity = in.Quantity
		sale.TaxRate = in.TaxRate
		sale.UnitPrice = product.Price // repreciación al editar
		sale.Recompute()
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity-difference); err != nil {
			return err
		}
		revised = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return revised, nil
}

// ReverseSale elimina una venta devolviendo su cantidad al stock del producto.
// Restaurar stock no tiene cota superior, así que la única precondición es que
// la venta exista.
func (uc *UseCase) ReverseSale(ctx context.Context, saleID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByIDForUpdate(sale.ProductID)
		if err != nil {
			return err
		}
		// El producto siempre existe mientras tenga ventas (política de borrado),
		// pero un ledger heredado puede traer referencias colgantes: en ese caso
		// solo se elimina la venta.
		if product != nil {
			if err := productRepo.UpdateQuantity(product.ID, product.Quantity+sale.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.Delete(sale.ID)
	})
}
