package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSaleAmounts(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice string
		quantity  int64
		taxRate   string
		subtotal  string
		taxAmount string
		total     string
	}{
		{"caso de referencia 10 x 3 al 15%", "10.00", 3, "15", "30.00", "4.50", "34.50"},
		{"sin impuesto", "7.50", 2, "0", "15.00", "0", "15.00"},
		{"tasa fraccionaria", "5.75", 9, "7.5", "51.75", "3.88125", "55.63125"},
		{"precio con centavos", "0.01", 100, "15", "1.00", "0.15", "1.15"},
		{"cantidad uno", "1234.56", 1, "19", "1234.56", "234.5664", "1469.1264"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subtotal, taxAmount, total := entity.SaleAmounts(d(tc.unitPrice), tc.quantity, d(tc.taxRate))
			assert.True(t, subtotal.Equal(d(tc.subtotal)), "subtotal: %s", subtotal)
			assert.True(t, taxAmount.Equal(d(tc.taxAmount)), "tax_amount: %s", taxAmount)
			assert.True(t, total.Equal(d(tc.total)), "total: %s", total)
		})
	}
}

// El cálculo es decimal exacto: 0.1 × 3 da 0.3, no el 0.30000000000000004
// de coma flotante.
func TestSaleAmounts_SinErrorDeComaFlotante(t *testing.T) {
	subtotal, _, _ := entity.SaleAmounts(d("0.1"), 3, decimal.Zero)
	assert.True(t, subtotal.Equal(d("0.3")), "subtotal: %s", subtotal)
}

func TestRecompute(t *testing.T) {
	s := &entity.Sale{
		Quantity:  5,
		UnitPrice: d("10.00"),
		TaxRate:   d("15"),
		// Derivados obsoletos a propósito
		Subtotal:  d("1"),
		TaxAmount: d("2"),
		Total:     d("3"),
	}
	s.Recompute()
	assert.True(t, s.Subtotal.Equal(d("50.00")))
	assert.True(t, s.TaxAmount.Equal(d("7.50")))
	assert.True(t, s.Total.Equal(d("57.50")))
}
