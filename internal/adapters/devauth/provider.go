package devauth

// Package devauth provides a simple, config-driven IdentityProvider for local development.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// Config controls the dev auth provider behavior.
// Email is required; Name and Picture may be empty.
type Config struct {
	Email   string
	Name    string
	Picture string
}

// Provider implements ports.IdentityProvider for local development.
// It short-circuits the OAuth flow by redirecting back to our own callback
// with locally generated state and nonce.
// Exchange ignores the code and returns the configured claims.
type Provider struct {
	claims domainauth.Claims
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	return &Provider{
		claims: domainauth.Claims{
			Email:   cfg.Email,
			Name:    cfg.Name,
			Picture: cfg.Picture,
		},
	}, nil
}

// Begin returns a local callback URL and cryptographically secure state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	// Our standard handler expects GET /auth/callback?code=...&state=...
	authURL := "/auth/callback?code=dev&state=" + state
	return authURL, state, nonce, nil
}

// Exchange ignores the provided code/state/nonce (validation handled by handler)
// and returns the configured claims. The credential is a fixed dev token so
// downstream backends can recognize local traffic.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (ports.ExchangeResult, error) {
	return ports.ExchangeResult{Claims: p.claims, Credential: "dev-credential"}, nil
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	// Compute number of random bytes needed to produce at least n base64 URL chars
	bLen := (n*3 + 3) / 4
	b := make([]byte, bLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < n {
		// pad
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:n], nil
}
