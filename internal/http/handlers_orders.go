package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/service"
)

// OrderServiceInterface defines the interface for order service operations.
type OrderServiceInterface interface {
	Checkout(ctx context.Context, session domainauth.Session, input service.CheckoutInput) (domaincart.Cart, error)
}

// OrderHandlers provides HTTP handlers for order submission.
type OrderHandlers struct {
	Svc OrderServiceInterface
}

// checkoutRequest is the JSON body for submitting the cart as an order.
// Omitted shipping and currency fields get backend defaults.
type checkoutRequest struct {
	PaymentMode      int     `json:"paymentMode"`
	PaymentCurrency  string  `json:"paymentCurrency"`
	ShippingCost     float64 `json:"shippingCost"`
	ShippingCurrency string  `json:"shippingCurrency"`
	ShippingAddress  string  `json:"shippingAddress"`
}

// Checkout submits the session's cart as an order. The cart is cleared only
// when the backend accepts the order.
// POST /api/orders.
func (h *OrderHandlers) Checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cart, err := h.Svc.Checkout(r.Context(), *session, service.CheckoutInput{
		PaymentMode:      req.PaymentMode,
		PaymentCurrency:  req.PaymentCurrency,
		ShippingCost:     req.ShippingCost,
		ShippingCurrency: req.ShippingCurrency,
		ShippingAddress:  req.ShippingAddress,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"status": "submitted",
		"cart":   cartPayload(cart),
	})
}
