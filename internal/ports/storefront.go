package ports

import (
	"context"

	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
)

// CartStore persists per-session cart state.
type CartStore interface {
	Save(ctx context.Context, sessionID string, c domaincart.Cart) error
	Get(ctx context.Context, sessionID string) (domaincart.Cart, error)
	Delete(ctx context.Context, sessionID string) error
}

// CartLine mirrors one cart row held by the order backend.
type CartLine struct {
	CartID         string  `json:"cartID"`
	ProductID      string  `json:"productID"`
	RetailerID     string  `json:"retailerID"`
	ManufacturerID string  `json:"manufacturerID,omitempty"`
	OrderQuantity  int     `json:"orderQuantity"`
	ProductPrice   float64 `json:"productPrice"`
}

// OrderDetail is one product row inside an order submission.
type OrderDetail struct {
	ProductID    string  `json:"productID"`
	Quantity     int     `json:"quantity"`
	ProductPrice float64 `json:"productPrice"`
}

// OrderRequest is the payload for creating an order with the order backend.
type OrderRequest struct {
	RetailerID       string        `json:"retailerID"`
	ManufacturerID   string        `json:"manufacturerID,omitempty"`
	PaymentMode      int           `json:"paymentMode"`
	PaymentCurrency  string        `json:"paymentCurrency"`
	ShippingCost     float64       `json:"shippingCost"`
	ShippingCurrency string        `json:"shippingCurrency"`
	ShippingAddress  string        `json:"shippingAddress"`
	CreatedBy        string        `json:"createdBy"`
	OrderDetails     []OrderDetail `json:"orderDetails"`
}

// OrderBackend is the opaque order-management backend. Calls are keyed by a
// retailer identifier and authorized with the session bearer token. Each call
// is a single fire-and-await: no retry, no dedup.
type OrderBackend interface {
	CreateCartLine(ctx context.Context, token string, line CartLine) (cartID string, err error)
	ListCartLines(ctx context.Context, token, retailerID string) ([]CartLine, error)
	DeleteCartLine(ctx context.Context, token, cartID string) error
	CreateOrder(ctx context.Context, token string, order OrderRequest) error
}

// Product is the catalog backend's product shape.
type Product struct {
	ProductID      string  `json:"productID"`
	ProductName    string  `json:"productName"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category,omitempty"`
	RetailPrice    float64 `json:"retailPrice"`
	WholesalePrice float64 `json:"wholesalePrice"`
	Quantity       int     `json:"quantity"`
	RetailerID     string  `json:"retailerID,omitempty"`
	ManufacturerID string  `json:"manufacturerID,omitempty"`
	ShippingCost   float64 `json:"shippingCost,omitempty"`
	ProductImage   string  `json:"productImage,omitempty"`
}

// Catalog is the opaque product-management backend.
type Catalog interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, productID string) (Product, error)
}
