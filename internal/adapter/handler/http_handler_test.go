package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rl1809/product-factory/internal/core/service"
)

func newTestHTTPHandler(t *testing.T, opts ...service.Option) (*HTTPHandler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	catalog := service.NewCatalogService(service.NewInventoryRegistry(zap.New(core), 0), opts...)
	return NewHTTPHandler(catalog, zap.NewNop(), 0, 0), logs
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHTTP_HealthCheck(t *testing.T) {
	h, _ := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestHTTP_HealthCheck_RejectsNonGet(t *testing.T) {
	h, _ := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodPost, "/health", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTP_OversizedBodyRejected(t *testing.T) {
	h, logs := newTestHTTPHandler(t)

	body := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `","price":"1","description":"d"}`
	rec := do(t, h.Routes(), http.MethodPost, "/api/inventory", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestHTTP_CreateProduct(t *testing.T) {
	h, _ := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodPost, "/api/products", `{"variant":"milk"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProductJSON{Name: "Milk", Price: "2.5", Description: "Fresh cow milk"}, decode[ProductJSON](t, rec))
}

func TestHTTP_CreateProduct_Errors(t *testing.T) {
	h, _ := newTestHTTPHandler(t)
	routes := h.Routes()

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, routes, http.MethodGet, "/api/products", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, routes, http.MethodPost, "/api/products", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, routes, http.MethodPost, "/api/products", `{"variant":"toys"}`).Code)
}

func TestHTTP_BuildProduct(t *testing.T) {
	h, _ := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodPost, "/api/products/build",
		`{"name":"Custom Product","price":"3.5","description":"Custom description"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProductJSON{Name: "Custom Product", Price: "3.5", Description: "Custom description"}, decode[ProductJSON](t, rec))
}

func TestHTTP_BuildProduct_Strict(t *testing.T) {
	h, _ := newTestHTTPHandler(t, service.WithStrictValidation(true))
	routes := h.Routes()

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, routes, http.MethodPost, "/api/products/build", `{"name":"Bare"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, routes, http.MethodPost, "/api/products/build", `{"price":"abc"}`).Code)
}

func TestHTTP_CloneProduct(t *testing.T) {
	h, _ := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodPost, "/api/products/clone",
		`{"name":"Apple","price":"0.5","description":"Fresh red apple"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProductJSON{Name: "Apple", Price: "0.5", Description: "Fresh red apple"}, decode[ProductJSON](t, rec))
}

func TestHTTP_RegisterProduct(t *testing.T) {
	h, logs := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodPost, "/api/inventory",
		`{"name":"Milk","price":"2.5","description":"Fresh cow milk"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RegisterHTTPResponse{Success: true, Message: "Product Milk added to inventory."}, decode[RegisterHTTPResponse](t, rec))
	assert.Equal(t, 1, logs.FilterMessage("Product Milk added to inventory.").Len())
}

func TestHTTP_ListVariants(t *testing.T) {
	h, _ := newTestHTTPHandler(t)

	rec := do(t, h.Routes(), http.MethodGet, "/api/variants", "")

	require.Equal(t, http.StatusOK, rec.Code)
	variants := decode[[]VariantJSON](t, rec)
	require.Len(t, variants, 4)
	assert.Equal(t, "household", variants[3].Name)
	assert.Equal(t, "category", variants[3].Family)
	assert.Equal(t, "Soap", variants[3].Product.Name)
}

func TestHTTP_RateLimit(t *testing.T) {
	catalog := service.NewCatalogService(service.NewInventoryRegistry(nil, 0))
	h := NewHTTPHandler(catalog, nil, 1, 1)
	routes := h.Routes()

	assert.Equal(t, http.StatusOK, do(t, routes, http.MethodGet, "/health", "").Code)

	rec := do(t, routes, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestHTTP_RequestIDPropagated(t *testing.T) {
	h, _ := newTestHTTPHandler(t)
	id := "3f1c2a9e-8d7b-4c6a-9e5f-1a2b3c4d5e6f"

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", id)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get("X-Request-Id"))
}
