package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/tradeport/tradeport-ui-api/config"
	"github.com/tradeport/tradeport-ui-api/internal/adapters/authroles"
	"github.com/tradeport/tradeport-ui-api/internal/adapters/devauth"
	"github.com/tradeport/tradeport-ui-api/internal/adapters/oidc"
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// buildIdentityProvider creates the identity provider for the configured
// auth mode. Unlike the rest of the wiring this is fatal on misconfiguration:
// the storefront cannot run without a way to sign shoppers in.
//
//nolint:ireturn // the caller only needs the port, not the concrete provider.
func buildIdentityProvider(cfg config.AuthConfig, logger *slog.Logger) (ports.IdentityProvider, error) {
	switch cfg.Mode {
	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			Email:   cfg.DevAuth.Email,
			Name:    cfg.DevAuth.Name,
			Picture: cfg.DevAuth.Picture,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		if logger != nil {
			logger.Warn("mock auth enabled; do not use in production", "email", cfg.DevAuth.Email)
		}
		return prov, nil

	case config.AuthModeOAuth:
		oauth := cfg.OAuth
		if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
			return nil, fmt.Errorf(
				"oauth mode requires discovery URL, client ID, and client secret (discovery_url_empty=%t client_id_empty=%t client_secret_empty=%t)",
				oauth.DiscoveryURL == "", oauth.ClientID == "", oauth.ClientSecret == "",
			)
		}

		prov, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			RedirectURL:  oauth.RedirectURL,
			Scope:        oauth.Scope,
			DiscoveryURL: oauth.DiscoveryURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create OIDC provider: %w", err)
		}
		return prov, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// buildRoleMapper translates the configured role-code overrides into the
// mapper the session service uses. Overrides naming an unknown role are
// dropped with a warning rather than silently mapping to nothing.
func buildRoleMapper(overrides map[int]string, logger *slog.Logger) authroles.CodeMapper {
	if len(overrides) == 0 {
		return authroles.CodeMapper{}
	}

	parsed := make(map[int]domainauth.Role, len(overrides))
	for code, name := range overrides {
		role, ok := domainauth.ParseRole(name)
		if !ok {
			if logger != nil {
				logger.Warn("ignoring role override with unknown role", "code", code, "role", name)
			}
			continue
		}
		parsed[code] = role
	}

	return authroles.CodeMapper{Overrides: parsed}
}
