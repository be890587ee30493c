package tradeport

import (
	"context"
	"net/http"
	"net/url"

	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// ProductClient talks to the product-management backend. It implements
// ports.Catalog.
type ProductClient struct {
	base string
	http *http.Client
}

// NewProductClient builds a product-management client from Config.
func NewProductClient(cfg Config) (*ProductClient, error) {
	base, hc, err := cfg.resolve("product backend")
	if err != nil {
		return nil, err
	}
	return &ProductClient{base: base, http: hc}, nil
}

// productListResponse wraps the backend's product collection.
type productListResponse struct {
	Product []ports.Product `json:"product"`
}

// List fetches the full catalog.
func (c *ProductClient) List(ctx context.Context) ([]ports.Product, error) {
	var resp productListResponse
	err := doJSON(ctx, c.http, http.MethodGet, c.base+"/api/ProductManagement", "", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// GetByID fetches a single product.
func (c *ProductClient) GetByID(ctx context.Context, productID string) (ports.Product, error) {
	if productID == "" {
		return ports.Product{}, apperrors.Validation("product ID is required")
	}
	var p ports.Product
	err := doJSON(ctx, c.http, http.MethodGet, c.base+"/api/ProductManagement/"+url.PathEscape(productID), "", nil, &p)
	if err != nil {
		return ports.Product{}, err
	}
	return p, nil
}
