package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// CartServiceInterface defines the interface for cart service operations.
type CartServiceInterface interface {
	Get(ctx context.Context, sessionID string) (domaincart.Cart, error)
	AddItem(ctx context.Context, session domainauth.Session, p domaincart.Product) (domaincart.Cart, error)
	RemoveItem(ctx context.Context, session domainauth.Session, productID string) (domaincart.Cart, error)
	IncreaseQuantity(ctx context.Context, sessionID, productID string) (domaincart.Cart, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (domaincart.Cart, error)
	Clear(ctx context.Context, sessionID string) (domaincart.Cart, error)
	SyncFromBackend(ctx context.Context, session domainauth.Session) (domaincart.Cart, error)
}

// CatalogReader is the catalog dependency cart handlers need to resolve a
// product reference before adding it to the cart.
type CatalogReader interface {
	GetByID(ctx context.Context, productID string) (ports.Product, error)
}

// CartHandlers provides HTTP handlers for cart operations. All routes are
// guarded, so every request carries a session in its context.
type CartHandlers struct {
	Svc     CartServiceInterface
	Catalog CatalogReader
	Logger  *slog.Logger
}

// List returns the current session's cart.
// GET /api/cart.
func (h *CartHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	cart, err := h.Svc.Get(r.Context(), session.ID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// addItemRequest is the JSON body for adding a product to the cart.
type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem resolves the product against the catalog and adds it to the cart.
// A product already in the cart has its quantity incremented.
// POST /api/cart/items.
func (h *CartHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		WriteServiceError(w, apperrors.ValidationField("productId", "product ID is required"))
		return
	}

	product, err := h.Catalog.GetByID(r.Context(), req.ProductID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	cart, err := h.Svc.AddItem(r.Context(), *session, cartProduct(product))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// RemoveItem removes a product's line from the cart. Removing a product that
// is not in the cart is a no-op.
// DELETE /api/cart/items/{productID}.
func (h *CartHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	productID := r.PathValue("productID")
	cart, err := h.Svc.RemoveItem(r.Context(), *session, productID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// IncreaseQuantity increments the quantity of an existing cart line.
// POST /api/cart/items/{productID}/increment.
func (h *CartHandlers) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	productID := r.PathValue("productID")
	cart, err := h.Svc.IncreaseQuantity(r.Context(), session.ID, productID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// setQuantityRequest is the JSON body for setting an exact line quantity.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity sets the exact quantity of a cart line. Zero removes the line;
// negative values are rejected.
// PUT /api/cart/items/{productID}.
func (h *CartHandlers) SetQuantity(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	productID := r.PathValue("productID")
	cart, err := h.Svc.SetQuantity(r.Context(), session.ID, productID, req.Quantity)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// Clear empties the cart.
// DELETE /api/cart.
func (h *CartHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	cart, err := h.Svc.Clear(r.Context(), session.ID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// Sync merges the backend's cart rows into the local cart.
// POST /api/cart/sync.
func (h *CartHandlers) Sync(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOr401(w, r)
	if !ok {
		return
	}

	cart, err := h.Svc.SyncFromBackend(r.Context(), *session)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cartPayload(cart))
}

// sessionOr401 fetches the session placed in the context by the guard
// middleware. Missing means the route was wired without a guard.
func sessionOr401(w http.ResponseWriter, r *http.Request) (*domainauth.Session, bool) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return nil, false
	}
	return session, true
}

// cartProduct maps a catalog product to the cart's product reference.
// Retailers buy at the wholesale price.
func cartProduct(p ports.Product) domaincart.Product {
	return domaincart.Product{
		ID:             p.ProductID,
		Name:           p.ProductName,
		Price:          p.WholesalePrice,
		ManufacturerID: p.ManufacturerID,
		ImageURL:       p.ProductImage,
	}
}

// cartPayload shapes a cart for JSON responses.
func cartPayload(c domaincart.Cart) map[string]any {
	items := c.Items
	if items == nil {
		items = []domaincart.Line{}
	}
	return map[string]any{
		"items": items,
		"count": c.Count(),
		"total": c.Total(),
	}
}
