package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
// Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste un renglón de venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, unit_price, subtotal, tax_rate, tax_amount, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.UnitPrice,
		sale.Subtotal, sale.TaxRate, sale.TaxAmount, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate obtiene la venta bloqueando la fila (SELECT FOR UPDATE).
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.getByID(id, true)
}

func (r *SaleRepo) getByID(id string, forUpdate bool) (*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, unit_price, subtotal, tax_rate, tax_amount, total, created_at
		FROM sales WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice,
		&s.Subtotal, &s.TaxRate, &s.TaxAmount, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetWithProductName obtiene una venta unida con el nombre de su producto.
func (r *SaleRepo) GetWithProductName(id string) (*entity.SaleWithProduct, error) {
	query := `
		SELECT s.id, s.product_id, p.name, s.quantity, s.unit_price, s.subtotal, s.tax_rate, s.tax_amount, s.total, s.created_at
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.id = $1`
	var s entity.SaleWithProduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.UnitPrice,
		&s.Subtotal, &s.TaxRate, &s.TaxAmount, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale with product: %w", err)
	}
	return &s, nil
}

// ListWithProductName lista las ventas unidas con el nombre del producto,
// más reciente primero.
func (r *SaleRepo) ListWithProductName() ([]*entity.SaleWithProduct, error) {
	query := `
		SELECT s.id, s.product_id, p.name, s.quantity, s.unit_price, s.subtotal, s.tax_rate, s.tax_amount, s.total, s.created_at
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleWithProduct
	for rows.Next() {
		var s entity.SaleWithProduct
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.UnitPrice,
			&s.Subtotal, &s.TaxRate, &s.TaxAmount, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reescribe los campos mutables de la venta. Los cinco campos
// derivados viajan juntos: el llamador ya los recalculó de forma consistente.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET quantity = $2, unit_price = $3, subtotal = $4, tax_rate = $5, tax_amount = $6, total = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Quantity, sale.UnitPrice, sale.Subtotal,
		sale.TaxRate, sale.TaxAmount, sale.Total,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// CountByProduct cuenta las ventas que referencian un producto.
func (r *SaleRepo) CountByProduct(productID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales by product: %w", err)
	}
	return count, nil
}
