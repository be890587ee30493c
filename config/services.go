package config

import (
	"strings"
	"time"
)

// BackendConfig contains the base URLs and timeouts for the backend
// microservices this API fronts. Each service can live behind its own host;
// by default they all resolve to the same gateway.
type BackendConfig struct {
	// BaseURL is the default gateway for all backend services.
	BaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:5000"`

	// UserBaseURL overrides the gateway for the user service.
	UserBaseURL string `env:"BACKEND_USER_BASE_URL"`

	// ProductBaseURL overrides the gateway for the product-management service.
	ProductBaseURL string `env:"BACKEND_PRODUCT_BASE_URL"`

	// OrderBaseURL overrides the gateway for the order-management service.
	OrderBaseURL string `env:"BACKEND_ORDER_BASE_URL"`

	// Timeout bounds every backend request.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails and resolves per-service URLs against the
// default gateway.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimSpace(b.BaseURL)
	if b.UserBaseURL = strings.TrimSpace(b.UserBaseURL); b.UserBaseURL == "" {
		b.UserBaseURL = b.BaseURL
	}
	if b.ProductBaseURL = strings.TrimSpace(b.ProductBaseURL); b.ProductBaseURL == "" {
		b.ProductBaseURL = b.BaseURL
	}
	if b.OrderBaseURL = strings.TrimSpace(b.OrderBaseURL); b.OrderBaseURL == "" {
		b.OrderBaseURL = b.BaseURL
	}
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
}
