package bootstrap

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tradeport/tradeport-ui-api/config"
)

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeMock,
			DevAuth: config.DevAuthConfig{
				Email: "dev@example.com",
				Name:  "Dev User",
			},
		},
		Storage: config.StorageConfig{
			SessionTTL: 8 * time.Hour,
			CartTTL:    168 * time.Hour,
		},
		Backend: config.BackendConfig{
			BaseURL:        "http://localhost:5000",
			UserBaseURL:    "http://localhost:5000",
			ProductBaseURL: "http://localhost:5000",
			OrderBaseURL:   "http://localhost:5000",
			Timeout:        10 * time.Second,
		},
	}
}

func TestNewServicesRequiresDeps(t *testing.T) {
	if _, err := NewServices(nil); err == nil {
		t.Fatal("expected error for nil deps")
	}
	if _, err := NewServices(&ServiceDeps{Config: nil}); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewServices(&ServiceDeps{Config: testAppConfig()}); err == nil {
		t.Fatal("expected error for nil redis client")
	}
}

func TestNewServicesWiresContainer(t *testing.T) {
	// Constructing the client does not dial; no Redis server is needed here.
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	container, err := NewServices(&ServiceDeps{
		Config:      testAppConfig(),
		RedisClient: client,
		Logger:      discardLogger(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if container.Sessions == nil {
		t.Error("expected session service")
	}
	if container.Carts == nil {
		t.Error("expected cart service")
	}
	if container.Catalog == nil {
		t.Error("expected catalog service")
	}
	if container.Orders == nil {
		t.Error("expected order service")
	}
}

func TestNewServicesRejectsEmptyBackendURL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	cfg := testAppConfig()
	cfg.Backend.UserBaseURL = ""

	if _, err := NewServices(&ServiceDeps{
		Config:      cfg,
		RedisClient: client,
		Logger:      discardLogger(),
	}); err == nil {
		t.Fatal("expected error for empty backend URL")
	}
}

func TestBuildServerDefaults(t *testing.T) {
	server := buildServer(&HTTPServerConfig{Config: &config.AppConfig{}}, discardLogger())

	if server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", server.Addr)
	}
	if server.Handler == nil {
		t.Error("expected a handler")
	}
}
