package tradeport

import (
	"context"
	"net/http"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// UserClient talks to the user-management backend. It implements
// ports.UserDirectory.
type UserClient struct {
	base string
	http *http.Client
}

// NewUserClient builds a user-management client from Config.
func NewUserClient(cfg Config) (*UserClient, error) {
	base, hc, err := cfg.resolve("user backend")
	if err != nil {
		return nil, err
	}
	return &UserClient{base: base, http: hc}, nil
}

// validateRequest is the credential-check payload expected by the backend.
type validateRequest struct {
	Credential string `json:"credential"`
}

// validateResponse is the backend's answer to a successful credential check.
type validateResponse struct {
	Token string             `json:"token"`
	User  domainauth.Account `json:"user"`
}

// ValidateIdentity submits the provider credential to the backend. A 404
// means the identity has no account yet and surfaces as a NotRegistered
// error; a 401 means the credential was rejected outright.
func (c *UserClient) ValidateIdentity(ctx context.Context, credential string) (ports.ValidationResult, error) {
	if credential == "" {
		return ports.ValidationResult{}, apperrors.Validation("credential is required")
	}

	var resp validateResponse
	err := doJSON(ctx, c.http, http.MethodPost, c.base+"/api/User/validategoogleuser", "",
		validateRequest{Credential: credential}, &resp)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return ports.ValidationResult{}, apperrors.Wrap(err, apperrors.ErrCodeNotRegistered, "identity has no account")
		}
		return ports.ValidationResult{}, err
	}

	return ports.ValidationResult{Token: resp.Token, Account: resp.User}, nil
}

// Register creates an account for the given profile.
func (c *UserClient) Register(ctx context.Context, reg ports.Registration) error {
	return doJSON(ctx, c.http, http.MethodPost, c.base+"/api/User/registerUser", "", reg, nil)
}
