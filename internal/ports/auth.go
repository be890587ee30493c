package ports

// Package ports defines interfaces (hexagonal ports) for auth- and
// storefront-related behavior. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
)

// BeginInput carries inputs for initiating an auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// ExchangeResult is the outcome of completing an auth flow: the decoded
// identity claims plus the raw provider credential, which the user directory
// validates server-side.
type ExchangeResult struct {
	Claims     domainauth.Claims
	Credential string
}

// IdentityProvider initiates and completes an authentication flow against an IdP.
type IdentityProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce.
	Exchange(ctx context.Context, in ExchangeInput) (ExchangeResult, error)
}

// CredentialDecoder extracts identity claims from a raw provider credential.
// Decoding is local and does not verify the signature; the user directory is
// the authority on whether the credential is acceptable.
type CredentialDecoder interface {
	Decode(credential string) (domainauth.Claims, error)
}

// SessionStore persists and retrieves session state keyed by session ID.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper translates backend numeric role codes to application roles.
type RoleMapper interface {
	Map(code int) domainauth.Role
}

// Registration carries the profile fields submitted to the user directory.
type Registration struct {
	LoginID   string `json:"loginID"`
	UserName  string `json:"userName"`
	Password  string `json:"strPassword"`
	Role      int    `json:"role"`
	PhoneNo   string `json:"phoneNo"`
	Address   string `json:"address"`
	Remarks   string `json:"remarks,omitempty"`
	CreatedOn string `json:"createdOn"`
	IsActive  bool   `json:"isActive"`
}

// ValidationResult is the user directory's response to a credential check.
type ValidationResult struct {
	Token   string
	Account domainauth.Account
}

// UserDirectory is the opaque user-management backend.
type UserDirectory interface {
	// ValidateIdentity submits the provider credential and returns the
	// backend-issued token plus the account record. Returns a NotRegistered
	// error when the identity has no account and an Unauthorized error when
	// the credential is rejected.
	ValidateIdentity(ctx context.Context, credential string) (ValidationResult, error)

	// Register creates an account for the given profile.
	Register(ctx context.Context, reg Registration) error
}
