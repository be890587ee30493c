package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// CatalogServiceInterface defines the interface for catalog service operations.
type CatalogServiceInterface interface {
	List(ctx context.Context) ([]ports.Product, error)
	GetByID(ctx context.Context, productID string) (ports.Product, error)
	Search(ctx context.Context, expression string) ([]ports.Product, error)
}

// CatalogHandlers provides HTTP handlers for product catalog operations.
// The catalog is read-only from this service's point of view.
type CatalogHandlers struct {
	Svc CatalogServiceInterface
}

// List returns the full product catalog.
// GET /api/products.
func (h *CatalogHandlers) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, productsPayload(products))
}

// GetByID returns a single product.
// GET /api/products/{productID}.
func (h *CatalogHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")
	if productID == "" {
		WriteServiceError(w, apperrors.ValidationField("productID", "product ID is required"))
		return
	}

	product, err := h.Svc.GetByID(r.Context(), productID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// Search filters the catalog with a JMESPath expression over the product
// list. An empty filter returns the full catalog.
// GET /api/products/search?filter=<expression>.
func (h *CatalogHandlers) Search(w http.ResponseWriter, r *http.Request) {
	expression := r.URL.Query().Get("filter")

	products, err := h.Svc.Search(r.Context(), expression)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, productsPayload(products))
}

// productsPayload shapes a product list for JSON responses.
func productsPayload(products []ports.Product) map[string]any {
	if products == nil {
		products = []ports.Product{}
	}
	return map[string]any{
		"products": products,
		"count":    len(products),
	}
}
