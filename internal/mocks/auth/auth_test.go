package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

func TestMockIdentityProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockIdentityProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	authURL2, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "https://mock-idp/auth", authURL2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockIdentityProvider_Begin_CustomFunc(t *testing.T) {
	provider := &MockIdentityProvider{
		BeginFunc: func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
			return "custom-url", "custom-state", "custom-nonce", nil
		},
	}
	ctx := context.Background()

	authURL, state, nonce, err := provider.Begin(ctx, ports.BeginInput{RedirectURL: "/"})

	require.NoError(t, err)
	assert.Equal(t, "custom-url", authURL)
	assert.Equal(t, "custom-state", state)
	assert.Equal(t, "custom-nonce", nonce)
}

func TestMockIdentityProvider_Exchange_Defaults(t *testing.T) {
	provider := NewMockIdentityProvider()
	ctx := context.Background()

	res, err := provider.Exchange(ctx, ports.ExchangeInput{Code: "auth-code", State: "state-1", Nonce: "nonce-1"})

	require.NoError(t, err)
	assert.Equal(t, "mock.user@example.com", res.Claims.Email)
	assert.Equal(t, "mock-credential", res.Credential)
}

func TestStaticCredentialDecoder(t *testing.T) {
	dec := StaticCredentialDecoder{Claims: domainauth.Claims{Email: "a@b.c"}}

	claims, err := dec.Decode("anything")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", claims.Email)

	_, err = dec.Decode("")
	require.Error(t, err)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.EmptySession()
	sess.ID = "sess-1"
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionStore_EmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.Error(t, store.Save(ctx, domainauth.Session{}))
	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, store.Delete(ctx, ""))
}

func TestMemoryCartStore(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	// Missing key reads as empty cart
	c, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	c = domaincart.Add(c, domaincart.Product{ID: "p1", Name: "Chair", Price: 10})
	require.NoError(t, store.Save(ctx, "sess-1", c))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	got, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}
