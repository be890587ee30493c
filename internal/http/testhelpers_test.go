package httpx

import (
	"context"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
	"github.com/tradeport/tradeport-ui-api/internal/service"
)

// mockAuthService is a test double for the session service.
type mockAuthService struct {
	beginLoginFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	registerFunc      func(ctx context.Context, input service.RegisterInput) (*domainauth.Session, error)
	getSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc        func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) BeginLogin(
	ctx context.Context,
	redirectURL string,
) (*service.BeginLoginResult, error) {
	if m.beginLoginFunc != nil {
		return m.beginLoginFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://example.com/auth?state=test-state&nonce=test-nonce",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (m *mockAuthService) CompleteLogin(
	ctx context.Context,
	input service.CompleteLoginInput,
) (*service.CompleteLoginResult, error) {
	if m.completeLoginFunc != nil {
		return m.completeLoginFunc(ctx, input)
	}
	return &service.CompleteLoginResult{Session: registeredSession("test-session-id")}, nil
}

func (m *mockAuthService) Register(
	ctx context.Context,
	input service.RegisterInput,
) (*domainauth.Session, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, input)
	}
	session := registeredSession("test-session-id")
	return &session, nil
}

func (m *mockAuthService) GetSession(
	ctx context.Context,
	sessionID string,
) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	session := registeredSession(sessionID)
	return &session, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

// mockCartService is a test double for the cart service. It records the last
// invocation and returns a canned cart.
type mockCartService struct {
	cart domaincart.Cart
	err  error

	lastOp        string
	lastSessionID string
	lastProduct   domaincart.Product
	lastProductID string
	lastQuantity  int
}

func (m *mockCartService) Get(_ context.Context, sessionID string) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID = "get", sessionID
	return m.cart, m.err
}

func (m *mockCartService) AddItem(
	_ context.Context,
	session domainauth.Session,
	p domaincart.Product,
) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID, m.lastProduct = "add", session.ID, p
	return m.cart, m.err
}

func (m *mockCartService) RemoveItem(
	_ context.Context,
	session domainauth.Session,
	productID string,
) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID, m.lastProductID = "remove", session.ID, productID
	return m.cart, m.err
}

func (m *mockCartService) IncreaseQuantity(
	_ context.Context,
	sessionID, productID string,
) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID, m.lastProductID = "increment", sessionID, productID
	return m.cart, m.err
}

func (m *mockCartService) SetQuantity(
	_ context.Context,
	sessionID, productID string,
	quantity int,
) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID, m.lastProductID, m.lastQuantity = "set", sessionID, productID, quantity
	return m.cart, m.err
}

func (m *mockCartService) Clear(_ context.Context, sessionID string) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID = "clear", sessionID
	return m.cart, m.err
}

func (m *mockCartService) SyncFromBackend(
	_ context.Context,
	session domainauth.Session,
) (domaincart.Cart, error) {
	m.lastOp, m.lastSessionID = "sync", session.ID
	return m.cart, m.err
}

// mockCatalogService is a test double for the catalog service.
type mockCatalogService struct {
	products []ports.Product
	err      error

	lastProductID  string
	lastExpression string
}

func (m *mockCatalogService) List(context.Context) ([]ports.Product, error) {
	return m.products, m.err
}

func (m *mockCatalogService) GetByID(_ context.Context, productID string) (ports.Product, error) {
	m.lastProductID = productID
	if m.err != nil {
		return ports.Product{}, m.err
	}
	if len(m.products) > 0 {
		return m.products[0], nil
	}
	return ports.Product{ProductID: productID}, nil
}

func (m *mockCatalogService) Search(_ context.Context, expression string) ([]ports.Product, error) {
	m.lastExpression = expression
	return m.products, m.err
}

// mockOrderService is a test double for the order service.
type mockOrderService struct {
	cart domaincart.Cart
	err  error

	lastSession domainauth.Session
	lastInput   service.CheckoutInput
}

func (m *mockOrderService) Checkout(
	_ context.Context,
	session domainauth.Session,
	input service.CheckoutInput,
) (domaincart.Cart, error) {
	m.lastSession, m.lastInput = session, input
	return m.cart, m.err
}

// registeredSession builds an authenticated retailer session for tests.
func registeredSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:              id,
		IsRegistered:    true,
		IsAuthenticated: true,
		Token:           "backend-token",
		User: &domainauth.User{
			Email:  "test@example.com",
			Name:   "Test User",
			UserID: "user-1",
			Role:   domainauth.RoleRetailer,
		},
	}
}

// testProduct returns a catalog product used across handler tests.
func testProduct() ports.Product {
	return ports.Product{
		ProductID:      "p1",
		ProductName:    "Desk Lamp",
		Category:       "lighting",
		RetailPrice:    25,
		WholesalePrice: 12.5,
		Quantity:       40,
		ManufacturerID: "mfr-1",
		ProductImage:   "https://img.example.com/p1.png",
	}
}

// testCart returns a one-line cart used across handler tests.
func testCart() domaincart.Cart {
	c := domaincart.Empty()
	c = domaincart.Add(c, domaincart.Product{ID: "p1", Name: "Desk Lamp", Price: 12.5})
	return c
}
