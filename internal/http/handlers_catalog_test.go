package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

func TestCatalogHandlers_List(t *testing.T) {
	svc := &mockCatalogService{products: []ports.Product{testProduct()}}
	handlers := &CatalogHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	handlers.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Products []ports.Product `json:"products"`
		Count    int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Count)
	assert.Equal(t, "p1", payload.Products[0].ProductID)
}

func TestCatalogHandlers_List_EmptyCatalog(t *testing.T) {
	handlers := &CatalogHandlers{Svc: &mockCatalogService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	handlers.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":[],"count":0}`, w.Body.String())
}

func TestCatalogHandlers_List_BackendError(t *testing.T) {
	svc := &mockCatalogService{err: apperrors.Unavailable("backend request failed")}
	handlers := &CatalogHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	handlers.List(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCatalogHandlers_GetByID(t *testing.T) {
	svc := &mockCatalogService{products: []ports.Product{testProduct()}}
	handlers := &CatalogHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	req.SetPathValue("productID", "p1")
	w := httptest.NewRecorder()
	handlers.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", svc.lastProductID)

	var product ports.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Desk Lamp", product.ProductName)
}

func TestCatalogHandlers_GetByID_NotFound(t *testing.T) {
	svc := &mockCatalogService{err: apperrors.NotFound("product not found")}
	handlers := &CatalogHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
	req.SetPathValue("productID", "nope")
	w := httptest.NewRecorder()
	handlers.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandlers_Search(t *testing.T) {
	svc := &mockCatalogService{products: []ports.Product{testProduct()}}
	handlers := &CatalogHandlers{Svc: svc}

	target := "/api/products/search?filter=" + "%5B%3FwholesalePrice%20%3C%20%6020%60%5D"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handlers.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[?wholesalePrice < `20`]", svc.lastExpression)
}

func TestCatalogHandlers_Search_InvalidExpression(t *testing.T) {
	svc := &mockCatalogService{err: apperrors.Validation("invalid filter expression")}
	handlers := &CatalogHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?filter=%5B%3Fbroken", nil)
	w := httptest.NewRecorder()
	handlers.Search(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
