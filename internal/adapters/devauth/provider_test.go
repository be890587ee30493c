package devauth

import (
	"context"
	"strings"
	"testing"

	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

func TestProvider_BeginAndExchange(t *testing.T) {
	prov, err := NewProvider(Config{Email: "dev@example.com", Name: "Dev User"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	url, state, nonce, err := prov.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if !strings.HasPrefix(url, "/auth/callback?") {
		t.Fatalf("unexpected authURL: %s", url)
	}
	if state == "" || nonce == "" {
		t.Fatal("state and nonce should be generated")
	}
	res, err := prov.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	if err != nil {
		t.Fatalf("Exchange error: %v", err)
	}
	if res.Claims.Email != "dev@example.com" || res.Claims.Name != "Dev User" {
		t.Fatalf("unexpected claims: %+v", res.Claims)
	}
	if res.Credential == "" {
		t.Fatal("credential should not be empty")
	}
}

func TestNewProvider_RequiresEmail(t *testing.T) {
	if _, err := NewProvider(Config{}); err == nil {
		t.Fatal("expected error for missing email")
	}
}
