package auth

// Package auth contains simple hand-written test doubles for auth and
// storefront ports. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider  = (*MockIdentityProvider)(nil)
	_ ports.CredentialDecoder = (*StaticCredentialDecoder)(nil)
	_ ports.SessionStore      = (*MemorySessionStore)(nil)
	_ ports.CartStore         = (*MemoryCartStore)(nil)
)

// MockIdentityProvider simulates an IdP for tests with deterministic state/nonce handling.
type MockIdentityProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (ports.ExchangeResult, error)

	// Deterministic values for predictable testing
	AuthURL       string
	StatePrefix   string
	NoncePrefix   string
	DefaultClaims domainauth.Claims
	Credential    string

	// Internal state tracking for deterministic behavior
	callCount int
}

// NewMockIdentityProvider creates a MockIdentityProvider with sensible defaults.
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultClaims: domainauth.Claims{
			Email:   "mock.user@example.com",
			Name:    "Mock User",
			Picture: "https://mock-idp/picture.png",
		},
		Credential: "mock-credential",
	}
}

func (m *MockIdentityProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}

	statePrefix := m.StatePrefix
	if statePrefix == "" {
		statePrefix = "state"
	}
	noncePrefix := m.NoncePrefix
	if noncePrefix == "" {
		noncePrefix = "nonce"
	}

	state := fmt.Sprintf("%s-%d", statePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", noncePrefix, m.callCount)

	return authURL, state, nonce, nil
}

func (m *MockIdentityProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (ports.ExchangeResult, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	claims := m.DefaultClaims
	if claims.Email == "" {
		claims = domainauth.Claims{Email: "mock.user@example.com", Name: "Mock User"}
	}
	credential := m.Credential
	if credential == "" {
		credential = "mock-credential"
	}
	return ports.ExchangeResult{Claims: claims, Credential: credential}, nil
}

// StaticCredentialDecoder returns fixed claims for any credential.
type StaticCredentialDecoder struct {
	Claims domainauth.Claims
	Err    error
}

func (d StaticCredentialDecoder) Decode(credential string) (domainauth.Claims, error) {
	if d.Err != nil {
		return domainauth.Claims{}, d.Err
	}
	if credential == "" {
		return domainauth.Claims{}, errors.New("empty credential")
	}
	return d.Claims, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// MemoryCartStore is an in-memory cart store for unit tests. A missing key
// reads back as an empty cart, matching the Redis adapter.
type MemoryCartStore struct {
	carts map[string]domaincart.Cart
}

// NewMemoryCartStore creates a new in-memory cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]domaincart.Cart),
	}
}

func (m *MemoryCartStore) Save(_ context.Context, sessionID string, c domaincart.Cart) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.carts[sessionID] = c
	return nil
}

func (m *MemoryCartStore) Get(_ context.Context, sessionID string) (domaincart.Cart, error) {
	c, ok := m.carts[sessionID]
	if !ok {
		return domaincart.Empty(), nil
	}
	return c, nil
}

func (m *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
