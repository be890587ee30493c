// Package httpx provides the HTTP surface of the storefront UI API:
// handlers, middleware, and route wiring.
package httpx

import (
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	"github.com/tradeport/tradeport-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions *service.SessionService
	Carts    *service.CartService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	// Cookie configuration
	CookieDomain string
	SessionTTL   time.Duration
	// Logger for request and handler errors (optional)
	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Sessions,
		CookieDomain: services.CookieDomain,
		SessionTTL:   services.SessionTTL,
		Logger:       services.Logger,
	}
	cartHandlers := &CartHandlers{
		Svc:     services.Carts,
		Catalog: services.Catalog,
		Logger:  services.Logger,
	}
	catalogHandlers := &CatalogHandlers{Svc: services.Catalog}
	orderHandlers := &OrderHandlers{Svc: services.Orders}

	registerAuthRoutes(mux, authHandlers)
	registerCatalogRoutes(mux, catalogHandlers)
	registerCartRoutes(mux, cartHandlers, services.Sessions)
	registerOrderRoutes(mux, orderHandlers, services.Sessions)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return BrowserDetection()(mux)
}

// registerAuthRoutes wires the authentication endpoints. They are public:
// the flow itself establishes the session.
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("GET /auth/login", http.HandlerFunc(h.Login))
	mux.Handle("GET /auth/callback", http.HandlerFunc(h.Callback))
	mux.Handle("POST /auth/register", http.HandlerFunc(h.Register))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
}

// registerCatalogRoutes wires the catalog endpoints. Browsing the catalog
// does not require a session.
func registerCatalogRoutes(mux *http.ServeMux, h *CatalogHandlers) {
	mux.Handle("GET /api/products", http.HandlerFunc(h.List))
	mux.Handle("GET /api/products/search", http.HandlerFunc(h.Search))
	mux.Handle("GET /api/products/{productID}", http.HandlerFunc(h.GetByID))
}

// registerCartRoutes wires the cart endpoints behind the authentication guard.
func registerCartRoutes(mux *http.ServeMux, h *CartHandlers, authSvc AuthServiceInterface) {
	requireAuth := RequireAuth(authSvc)
	mux.Handle("GET /api/cart", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("DELETE /api/cart", requireAuth(http.HandlerFunc(h.Clear)))
	mux.Handle("POST /api/cart/items", requireAuth(http.HandlerFunc(h.AddItem)))
	mux.Handle("PUT /api/cart/items/{productID}", requireAuth(http.HandlerFunc(h.SetQuantity)))
	mux.Handle("DELETE /api/cart/items/{productID}", requireAuth(http.HandlerFunc(h.RemoveItem)))
	mux.Handle("POST /api/cart/items/{productID}/increment", requireAuth(http.HandlerFunc(h.IncreaseQuantity)))
	mux.Handle("POST /api/cart/sync", requireAuth(http.HandlerFunc(h.Sync)))
}

// registerOrderRoutes wires order submission behind the role guard. Only
// retailers place orders through this surface.
func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers, authSvc AuthServiceInterface) {
	requireRetailer := RequireRole(authSvc, domainauth.RoleRetailer)
	mux.Handle("POST /api/orders", requireRetailer(http.HandlerFunc(h.Checkout)))
}
