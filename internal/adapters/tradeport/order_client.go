package tradeport

import (
	"context"
	"net/http"
	"net/url"

	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// OrderClient talks to the order-management backend. It implements
// ports.OrderBackend.
type OrderClient struct {
	base string
	http *http.Client
}

// NewOrderClient builds an order-management client from Config.
func NewOrderClient(cfg Config) (*OrderClient, error) {
	base, hc, err := cfg.resolve("order backend")
	if err != nil {
		return nil, err
	}
	return &OrderClient{base: base, http: hc}, nil
}

// createCartResponse carries the backend-assigned cart row identifier.
type createCartResponse struct {
	CartID string `json:"cartID"`
}

// cartDetailsResponse wraps the cart rows held for a retailer.
type cartDetailsResponse struct {
	CartDetails []ports.CartLine `json:"cartDetails"`
}

// CreateCartLine mirrors one cart row to the backend and returns its
// backend-assigned identifier.
func (c *OrderClient) CreateCartLine(ctx context.Context, token string, line ports.CartLine) (string, error) {
	var resp createCartResponse
	err := doJSON(ctx, c.http, http.MethodPost, c.base+"/api/OrderManagement/CreateShoppingCart", token, line, &resp)
	if err != nil {
		return "", err
	}
	return resp.CartID, nil
}

// ListCartLines fetches the cart rows the backend holds for a retailer.
func (c *OrderClient) ListCartLines(ctx context.Context, token, retailerID string) ([]ports.CartLine, error) {
	if retailerID == "" {
		return nil, apperrors.Validation("retailer ID is required")
	}
	var resp cartDetailsResponse
	err := doJSON(ctx, c.http, http.MethodGet,
		c.base+"/api/OrderManagement/GetShoppingCart/"+url.PathEscape(retailerID), token, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.CartDetails, nil
}

// DeleteCartLine removes one cart row. The backend models removal as a PUT
// against a query-addressed endpoint, which this client preserves verbatim.
func (c *OrderClient) DeleteCartLine(ctx context.Context, token, cartID string) error {
	if cartID == "" {
		return apperrors.Validation("cart ID is required")
	}
	q := url.Values{"CartID": {cartID}}
	return doJSON(ctx, c.http, http.MethodPut,
		c.base+"/api/OrderManagement/DeleteCartItemByID/?"+q.Encode(), token, nil, nil)
}

// CreateOrder submits an order. Each call is a single fire-and-await with no
// retry; callers decide what to do with the local cart based on the outcome.
func (c *OrderClient) CreateOrder(ctx context.Context, token string, order ports.OrderRequest) error {
	if len(order.OrderDetails) == 0 {
		return apperrors.Validation("order has no detail rows")
	}
	return doJSON(ctx, c.http, http.MethodPost, c.base+"/api/OrderManagement/CreateOrder", token, order, nil)
}
