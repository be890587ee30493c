package service

import (
	"context"
	"fmt"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// Checkout defaults applied when the client omits them.
const (
	defaultShippingCost     = 10
	defaultShippingCurrency = "SGD"
	defaultPaymentCurrency  = "SGD"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders ports.OrderBackend
	Carts  ports.CartStore
}

// OrderService turns a session cart into an order submission. The submission
// is a single fire-and-await: no retry, no dedup. The cart is cleared only
// after the backend accepts the order, so a failed submission leaves the
// cart intact for another attempt.
type OrderService struct {
	orders ports.OrderBackend
	carts  ports.CartStore
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{orders: opts.Orders, carts: opts.Carts}
}

// CheckoutInput groups the order parameters supplied by the client.
type CheckoutInput struct {
	PaymentMode      int
	PaymentCurrency  string
	ShippingCost     float64
	ShippingCurrency string
	ShippingAddress  string
}

// Checkout submits the session's cart as an order.
func (s *OrderService) Checkout(ctx context.Context, session domainauth.Session, input CheckoutInput) (domaincart.Cart, error) {
	if !session.IsAuthenticated || session.User == nil || session.User.UserID == "" {
		return domaincart.Cart{}, apperrors.Unauthorized("checkout requires an authenticated session")
	}
	if input.ShippingAddress == "" {
		return domaincart.Cart{}, apperrors.ValidationField("shippingAddress", "shipping address is required")
	}

	cart, err := s.carts.Get(ctx, session.ID)
	if err != nil {
		return domaincart.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return domaincart.Cart{}, apperrors.Validation("cart is empty")
	}

	order := buildOrderRequest(session, cart, input)
	if err := s.orders.CreateOrder(ctx, session.Token, order); err != nil {
		// Keep the cart so the user can retry.
		return cart, fmt.Errorf("create order: %w", err)
	}

	cleared := domaincart.Clear(cart)
	if err := s.carts.Save(ctx, session.ID, cleared); err != nil {
		return cleared, fmt.Errorf("save cart: %w", err)
	}
	return cleared, nil
}

func buildOrderRequest(session domainauth.Session, cart domaincart.Cart, input CheckoutInput) ports.OrderRequest {
	if input.ShippingCost <= 0 {
		input.ShippingCost = defaultShippingCost
	}
	if input.ShippingCurrency == "" {
		input.ShippingCurrency = defaultShippingCurrency
	}
	if input.PaymentCurrency == "" {
		input.PaymentCurrency = defaultPaymentCurrency
	}

	details := make([]ports.OrderDetail, 0, len(cart.Items))
	manufacturerID := ""
	for _, line := range cart.Items {
		details = append(details, ports.OrderDetail{
			ProductID:    line.Product.ID,
			Quantity:     line.Quantity,
			ProductPrice: line.Product.Price,
		})
		if manufacturerID == "" {
			manufacturerID = line.Product.ManufacturerID
		}
	}

	return ports.OrderRequest{
		RetailerID:       session.User.UserID,
		ManufacturerID:   manufacturerID,
		PaymentMode:      input.PaymentMode,
		PaymentCurrency:  input.PaymentCurrency,
		ShippingCost:     input.ShippingCost,
		ShippingCurrency: input.ShippingCurrency,
		ShippingAddress:  input.ShippingAddress,
		CreatedBy:        session.User.UserID,
		OrderDetails:     details,
	}
}
