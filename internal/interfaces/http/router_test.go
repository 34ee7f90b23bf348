package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
	"github.com/mialmacen/pos-api/internal/infrastructure/pdf"
	apphttp "github.com/mialmacen/pos-api/internal/interfaces/http"
	"github.com/mialmacen/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// API HTTP de punta a punta sobre un store en memoria
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	slot := docstore.NewFileSlot(afero.NewMemMapFs(), "pos.json")
	store, err := docstore.Open(slot, logger.Nop())
	require.NoError(t, err)

	customerUC := usecase.NewCustomerUseCase(store)
	require.NoError(t, customerUC.EnsureDefault())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(store),
		CustomerUC: customerUC,
		CartUC:     usecase.NewCartUseCase(store),
		SaleUC:     usecase.NewSaleUseCase(store),
		ReportUC:   usecase.NewReportUseCase(store),
		SettingsUC: usecase.NewSettingsUseCase(store),
		BackupUC:   usecase.NewBackupUseCase(store),
		PDF:        pdf.NewGenerator(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAPI_Health(t *testing.T) {
	app := newTestApp(t)
	status := doJSON(t, app, "GET", "/health", nil, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAPI_FlujoDeVentaCompleto(t *testing.T) {
	app := newTestApp(t)

	// Alta de producto
	var product dto.ProductResponse
	status := doJSON(t, app, "POST", "/api/products", fiber.Map{
		"descripcion": "Gaseosa",
		"precioVenta": 100,
		"stock":       5,
		"stockMin":    1,
	}, &product)
	require.Equal(t, fiber.StatusCreated, status)
	require.NotEmpty(t, product.ID)

	// Al carrito
	var cart dto.CartResponse
	status = doJSON(t, app, "POST", "/api/cart/items", fiber.Map{
		"productoId": product.ID,
		"cantidad":   3,
	}, &cart)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "300", cart.Total.String())

	// Vuelto previsto antes de cobrar
	status = doJSON(t, app, "GET", "/api/cart?entregado=400", nil, &cart)
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, cart.ChangeDue)
	assert.Equal(t, "100", cart.ChangeDue.String())

	// Un monto entregado ilegible es un error de validación
	status = doJSON(t, app, "GET", "/api/cart?entregado=abc", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Commit
	var sale dto.SaleResponse
	status = doJSON(t, app, "POST", "/api/sales", fiber.Map{
		"clienteId": "mostrador",
		"cajero":    "Caja 1",
		"entregado": 400,
	}, &sale)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "300", sale.Total.String())
	assert.Equal(t, "100", sale.ChangeDue.String())
	assert.Equal(t, "Mostrador", sale.CustomerName)

	// El stock quedó descontado y el carrito vacío
	var list dto.ProductListResponse
	doJSON(t, app, "GET", "/api/products", nil, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 2, list.Items[0].Stock)

	var after dto.CartResponse
	doJSON(t, app, "GET", "/api/cart", nil, &after)
	assert.Empty(t, after.Items)
	assert.Nil(t, after.ChangeDue)

	// La venta se puede consultar por id
	var got dto.SaleResponse
	status = doJSON(t, app, "GET", "/api/sales/"+sale.ID, nil, &got)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, sale.ID, got.ID)
}

func TestAPI_ErroresDeDominio(t *testing.T) {
	app := newTestApp(t)

	var product dto.ProductResponse
	doJSON(t, app, "POST", "/api/products", fiber.Map{
		"descripcion": "Pan",
		"precioVenta": 100,
		"stock":       2,
	}, &product)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"carrito vacío", "POST", "/api/sales", fiber.Map{"entregado": 100}, fiber.StatusBadRequest, "EMPTY_CART"},
		{"producto inexistente", "POST", "/api/cart/items", fiber.Map{"productoId": "nada", "cantidad": 1}, fiber.StatusNotFound, "NOT_FOUND"},
		{"cantidad inválida", "POST", "/api/cart/items", fiber.Map{"productoId": product.ID, "cantidad": 0}, fiber.StatusBadRequest, "INVALID_QUANTITY"},
		{"stock insuficiente", "POST", "/api/cart/items", fiber.Map{"productoId": product.ID, "cantidad": 99}, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"mostrador protegido", "DELETE", "/api/customers/mostrador", nil, fiber.StatusForbidden, "PROTECTED"},
		{"descripción requerida", "POST", "/api/products", fiber.Map{"descripcion": " "}, fiber.StatusBadRequest, "VALIDATION"},
		{"backup inválido", "POST", "/api/backup", fiber.Map{"productos": 3}, fiber.StatusBadRequest, "INVALID_DOCUMENT"},
		{"venta inexistente", "GET", "/api/sales/nada", nil, fiber.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var errResp dto.ErrorResponse
			status := doJSON(t, app, tc.method, tc.path, tc.body, &errResp)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, errResp.Code)
		})
	}
}

func TestAPI_Exportaciones(t *testing.T) {
	app := newTestApp(t)

	var product dto.ProductResponse
	doJSON(t, app, "POST", "/api/products", fiber.Map{
		"descripcion": "Pan",
		"precioVenta": 100,
		"stock":       10,
	}, &product)
	var sale dto.SaleResponse
	status := doJSON(t, app, "POST", "/api/sales/quick", fiber.Map{
		"productoId": product.ID,
		"cantidad":   2,
	}, &sale)
	require.Equal(t, fiber.StatusCreated, status)

	cases := []struct {
		path        string
		contentType string
		prefix      string
	}{
		{"/api/reports/export.csv", "text/csv", "Fecha,Cliente"},
		{"/api/reports/export.xls", "application/vnd.ms-excel", "<?xml"},
		{"/api/reports/export.pdf", "application/pdf", "%PDF"},
		{fmt.Sprintf("/api/sales/%s/ticket", sale.ID), "application/pdf", "%PDF"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), tc.contentType)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(raw, []byte(tc.prefix)), "cuerpo inesperado: %.40q", raw)
		})
	}
}

func TestAPI_SettingsYBackup(t *testing.T) {
	app := newTestApp(t)

	var settings dto.SettingsResponse
	status := doJSON(t, app, "PUT", "/api/settings", fiber.Map{"storeName": "Almacén Don Luis"}, &settings)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Almacén Don Luis", settings.StoreName)

	status = doJSON(t, app, "POST", "/api/settings/cajeros", fiber.Map{"nombre": "Caja 2"}, &settings)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, []string{"Caja 1", "Caja 2"}, settings.Cashiers)

	status = doJSON(t, app, "POST", "/api/settings/cajeros", fiber.Map{"nombre": "Caja 2"}, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	// El backup exporta un documento completo que se puede reimportar
	req := httptest.NewRequest("GET", "/api/backup", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))

	importReq := httptest.NewRequest("POST", "/api/backup", bytes.NewReader(raw))
	importReq.Header.Set("Content-Type", "application/json")
	importResp, err := app.Test(importReq, -1)
	require.NoError(t, err)
	defer importResp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, importResp.StatusCode)

	// Reset vuelve todo a cero salvo el mostrador
	status = doJSON(t, app, "POST", "/api/backup/reset", nil, nil)
	require.Equal(t, fiber.StatusNoContent, status)
	var customers dto.CustomerListResponse
	doJSON(t, app, "GET", "/api/customers", nil, &customers)
	assert.Equal(t, 1, customers.Total)
}
