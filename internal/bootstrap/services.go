package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/tradeport/tradeport-ui-api/config"
	"github.com/tradeport/tradeport-ui-api/internal/adapters/idtoken"
	redisadapter "github.com/tradeport/tradeport-ui-api/internal/adapters/redis"
	"github.com/tradeport/tradeport-ui-api/internal/adapters/tradeport"
	"github.com/tradeport/tradeport-ui-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions *service.SessionService
	Carts    *service.CartService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// backendClients groups the HTTP adapters for the backend microservices.
type backendClients struct {
	Users    *tradeport.UserClient
	Products *tradeport.ProductClient
	Orders   *tradeport.OrderClient
}

func buildBackendClients(cfg config.BackendConfig) (backendClients, error) {
	users, err := tradeport.NewUserClient(tradeport.Config{
		BaseURL: cfg.UserBaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return backendClients{}, fmt.Errorf("create user client: %w", err)
	}

	products, err := tradeport.NewProductClient(tradeport.Config{
		BaseURL: cfg.ProductBaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return backendClients{}, fmt.Errorf("create product client: %w", err)
	}

	orders, err := tradeport.NewOrderClient(tradeport.Config{
		BaseURL: cfg.OrderBaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return backendClients{}, fmt.Errorf("create order client: %w", err)
	}

	return backendClients{Users: users, Products: products, Orders: orders}, nil
}

// NewServices wires the service layer from configuration, the Redis client,
// and the backend HTTP clients.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service dependencies are required")
	}
	if deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	sessionStore := redisadapter.NewSessionStoreWithOptions(deps.RedisClient, "session:", cfg.Storage.SessionTTL)
	cartStore := redisadapter.NewCartStoreWithOptions(deps.RedisClient, "cart:", cfg.Storage.CartTTL)

	clients, err := buildBackendClients(cfg.Backend)
	if err != nil {
		return ServiceContainer{}, err
	}

	provider, err := buildIdentityProvider(cfg.Auth, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	sessionSvc := service.NewSessionService(service.SessionServiceOptions{
		Provider:  provider,
		Decoder:   idtoken.NewDecoder(),
		Directory: clients.Users,
		Sessions:  sessionStore,
		Carts:     cartStore,
		Roles:     buildRoleMapper(cfg.Auth.RoleOverrides, logger),
	})

	cartSvc := service.NewCartService(service.CartServiceOptions{
		Carts:  cartStore,
		Orders: clients.Orders,
		Logger: logger,
	})

	catalogSvc := service.NewCatalogService(service.CatalogServiceOptions{
		Catalog: clients.Products,
	})

	orderSvc := service.NewOrderService(service.OrderServiceOptions{
		Orders: clients.Orders,
		Carts:  cartStore,
	})

	return ServiceContainer{
		Sessions: sessionSvc,
		Carts:    cartSvc,
		Catalog:  catalogSvc,
		Orders:   orderSvc,
	}, nil
}
