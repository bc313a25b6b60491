package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mini-erp-api/internal/application/invoicing"
	"github.com/jhoicas/mini-erp-api/internal/application/ledger"
	"github.com/jhoicas/mini-erp-api/internal/domain/entity"
	"github.com/jhoicas/mini-erp-api/internal/domain/repository"
	apihttp "github.com/jhoicas/mini-erp-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos sobre mapas y un TxRunner passthrough. Alcanza para
// probar el mapeo de errores y el contrato de respuesta; la semántica
// transaccional real se prueba en el paquete ledger.
// ──────────────────────────────────────────────────────────────────────────────

type memRepos struct {
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
}

func newMemRepos() *memRepos {
	return &memRepos{
		products: make(map[string]*entity.Product),
		sales:    make(map[string]*entity.Sale),
	}
}

// ProductRepository
func (m *memRepos) Create(p *entity.Product) error                      { m.products[p.ID] = p; return nil }
func (m *memRepos) GetByID(id string) (*entity.Product, error)          { return m.products[id], nil }
func (m *memRepos) GetByIDForUpdate(id string) (*entity.Product, error) { return m.products[id], nil }
func (m *memRepos) List() ([]*entity.Product, error)                    { return nil, nil }
func (m *memRepos) Update(p *entity.Product) error                      { m.products[p.ID] = p; return nil }
func (m *memRepos) UpdateQuantity(id string, quantity int64) error {
	m.products[id].Quantity = quantity
	return nil
}
func (m *memRepos) Delete(id string) error { delete(m.products, id); return nil }

type memSales struct{ m *memRepos }

func (r memSales) Create(s *entity.Sale) error { r.m.sales[s.ID] = s; return nil }
func (r memSales) GetByID(id string) (*entity.Sale, error) {
	return r.m.sales[id], nil
}
func (r memSales) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.m.sales[id], nil
}
func (r memSales) GetWithProductName(id string) (*entity.SaleWithProduct, error) {
	s, ok := r.m.sales[id]
	if !ok {
		return nil, nil
	}
	out := &entity.SaleWithProduct{Sale: *s}
	if p, ok := r.m.products[s.ProductID]; ok {
		out.ProductName = p.Name
	}
	return out, nil
}
func (r memSales) ListWithProductName() ([]*entity.SaleWithProduct, error) {
	list := make([]*entity.SaleWithProduct, 0, len(r.m.sales))
	for id := range r.m.sales {
		s, _ := r.GetWithProductName(id)
		list = append(list, s)
	}
	return list, nil
}
func (r memSales) Update(s *entity.Sale) error { r.m.sales[s.ID] = s; return nil }
func (r memSales) Delete(id string) error      { delete(r.m.sales, id); return nil }
func (r memSales) CountByProduct(productID string) (int64, error) {
	var n int64
	for _, s := range r.m.sales {
		if s.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateInvoicePDF(ctx context.Context, sale *entity.SaleWithProduct) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func buildTestApp(m *memRepos) *fiber.App {
	app := fiber.New()
	sales := memSales{m: m}
	txRunner := &txAdapter{m: m}
	saleHandler := apihttp.NewSaleHandler(
		ledger.NewUseCase(txRunner),
		ledger.NewQueryUseCase(sales),
	)
	app.Get("/get-sales", saleHandler.List)
	app.Post("/add-sale", saleHandler.Record)
	app.Put("/edit-sale/:id", saleHandler.Revise)
	app.Delete("/delete-sale/:id", saleHandler.Reverse)

	invoiceHandler := apihttp.NewInvoiceHandler(
		invoicing.NewPDFUseCase(sales, stubPDFGenerator{}),
	)
	app.Get("/invoice/:saleId", invoiceHandler.Download)
	return app
}

// txAdapter expone los repos en memoria bajo el contrato transaccional.
type txAdapter struct{ m *memRepos }

func (t *txAdapter) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(memSales{m: t.m}, t.m)
}

func seedProduct(m *memRepos, price string, quantity int64) *entity.Product {
	p := &entity.Product{
		ID:       uuid.New().String(),
		Name:     "Rice 5kg",
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
	}
	m.products[p.ID] = p
	return p
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err, "la petición no debe fallar a nivel de transporte")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed), "respuesta no es JSON: %s", raw)
	return resp.StatusCode, parsed
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAddSale_Exitoso(t *testing.T) {
	m := newMemRepos()
	product := seedProduct(m, "10.00", 20)
	app := buildTestApp(m)

	status, body := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+product.ID+`","quantity":3,"tax_rate":"15"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 17, m.products[product.ID].Quantity)
	require.Len(t, m.sales, 1)
}

func TestAddSale_StockInsuficiente(t *testing.T) {
	m := newMemRepos()
	product := seedProduct(m, "10.00", 2)
	app := buildTestApp(m)

	status, body := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+product.ID+`","quantity":5}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Not enough stock", body["error"])
	assert.EqualValues(t, 2, m.products[product.ID].Quantity, "el rechazo no toca el stock")
	assert.Empty(t, m.sales)
}

func TestAddSale_ProductoInexistente(t *testing.T) {
	app := buildTestApp(newMemRepos())

	status, body := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+uuid.New().String()+`","quantity":1}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Product not found", body["error"])
}

func TestAddSale_CamposFaltantes(t *testing.T) {
	app := buildTestApp(newMemRepos())

	status, body := doJSON(t, app, fiber.MethodPost, "/add-sale", `{"quantity":1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "product_id and quantity required", body["error"])

	status, body = doJSON(t, app, fiber.MethodPost, "/add-sale", `{no json}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "product_id and quantity required", body["error"])
}

func TestEditSale_Exitoso(t *testing.T) {
	m := newMemRepos()
	product := seedProduct(m, "10.00", 20)
	app := buildTestApp(m)

	status, _ := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+product.ID+`","quantity":3,"tax_rate":"15"}`)
	require.Equal(t, fiber.StatusOK, status)

	var saleID string
	for id := range m.sales {
		saleID = id
	}

	status, body := doJSON(t, app, fiber.MethodPut, "/edit-sale/"+saleID,
		`{"quantity":5,"tax_rate":"15"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 15, m.products[product.ID].Quantity)
	assert.True(t, m.sales[saleID].Total.Equal(decimal.RequireFromString("57.50")))
}

func TestDeleteSale_Inexistente(t *testing.T) {
	app := buildTestApp(newMemRepos())

	status, body := doJSON(t, app, fiber.MethodDelete, "/delete-sale/"+uuid.New().String(), "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Sale not found", body["error"])
}

func TestDeleteSale_RestauraStock(t *testing.T) {
	m := newMemRepos()
	product := seedProduct(m, "10.00", 20)
	app := buildTestApp(m)

	status, _ := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+product.ID+`","quantity":8}`)
	require.Equal(t, fiber.StatusOK, status)

	var saleID string
	for id := range m.sales {
		saleID = id
	}

	status, body := doJSON(t, app, fiber.MethodDelete, "/delete-sale/"+saleID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 20, m.products[product.ID].Quantity)
	assert.Empty(t, m.sales)
}

func TestGetSales_IncluyeNombreDeProducto(t *testing.T) {
	m := newMemRepos()
	product := seedProduct(m, "10.00", 20)
	app := buildTestApp(m)

	status, _ := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+product.ID+`","quantity":2}`)
	require.Equal(t, fiber.StatusOK, status)

	req := httptest.NewRequest(fiber.MethodGet, "/get-sales", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Rice 5kg", items[0]["product_name"])
	assert.Equal(t, product.ID, items[0]["product_id"])
}

func TestInvoice_Descarga(t *testing.T) {
	m := newMemRepos()
	product := seedProduct(m, "10.00", 20)
	app := buildTestApp(m)

	status, _ := doJSON(t, app, fiber.MethodPost, "/add-sale",
		`{"product_id":"`+product.ID+`","quantity":1}`)
	require.Equal(t, fiber.StatusOK, status)

	var saleID string
	for id := range m.sales {
		saleID = id
	}

	req := httptest.NewRequest(fiber.MethodGet, "/invoice/"+saleID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "inline; filename=invoice-"+saleID+".pdf", resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"), "el cuerpo debe ser un PDF")
}

func TestInvoice_VentaInexistente(t *testing.T) {
	app := buildTestApp(newMemRepos())

	req := httptest.NewRequest(fiber.MethodGet, "/invoice/"+uuid.New().String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invoice not found", body["error"])
}
