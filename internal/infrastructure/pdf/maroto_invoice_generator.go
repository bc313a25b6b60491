// Package pdf implementa la generación de la factura de una venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "INVOICE"  │  N° Factura + Fecha                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Cant | Precio Unit. | Total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Tax / TOTAL                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mini-erp-api/internal/application/invoicing"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
)

// currency prefijo monetario de los importes impresos.
const currency = "SAR"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ invoicing.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implementa invoicing.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator construye el generador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF genera el PDF de la venta y devuelve sus bytes.
// Los importes se imprimen redondeados a dos decimales; los valores
// almacenados conservan la precisión completa.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	sale *entity.SaleWithProduct,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+sale.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(lineItemRow(sale))
	m.AddRows(line.NewRow(4))
	m.AddRows(totalsRows(sale)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título "INVOICE" (izq), número y fecha (der).
func headerRow(sale *entity.SaleWithProduct) core.Row {
	fecha := sale.CreatedAt.Format("02/01/2006")
	return row.New(20).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 20, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Invoice #: "+sale.ID, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
			text.New("Date: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del único renglón.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Top: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Left),
		h("Product", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// lineItemRow: el renglón de la venta.
func lineItemRow(sale *entity.SaleWithProduct) core.Row {
	return row.New(8).Add(
		col.New(1).Add(text.New("1", props.Text{Size: 9, Top: 1})),
		col.New(5).Add(text.New(sale.ProductName, props.Text{Size: 9, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", sale.Quantity), props.Text{
			Size: 9, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(money(sale.UnitPrice), props.Text{
			Size: 9, Align: align.Right, Top: 1,
		})),
		col.New(3).Add(text.New(money(sale.Subtotal), props.Text{
			Size: 9, Align: align.Right, Top: 1,
		})),
	)
}

// totalsRows: bloque Subtotal / Tax / TOTAL alineado a la derecha.
func totalsRows(sale *entity.SaleWithProduct) []core.Row {
	amount := func(label, value string, bold bool, size float64) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(7).Add(
			col.New(7),
			col.New(2).Add(text.New(label, props.Text{
				Style: style, Size: size, Align: align.Left, Top: 1,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Style: style, Size: size, Align: align.Right, Top: 1,
			})),
		)
	}
	return []core.Row{
		amount("Subtotal:", money(sale.Subtotal), false, 9),
		amount("Tax:", money(sale.TaxAmount), false, 9),
		amount("TOTAL:", money(sale.Total), true, 11),
	}
}

// money formatea un importe con moneda y dos decimales (solo presentación).
func money(v decimal.Decimal) string {
	return currency + " " + v.StringFixed(2)
}
