package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Provider  ports.IdentityProvider
	Decoder   ports.CredentialDecoder
	Directory ports.UserDirectory
	Sessions  ports.SessionStore
	Carts     ports.CartStore // optional, cleared on logout when set
	Roles     ports.RoleMapper
}

// SessionService orchestrates authentication flows by coordinating the
// identity provider, the user directory, role mapping, and session
// persistence. All session state transitions go through the pure functions
// in the auth domain package; this service only sequences them and does I/O.
type SessionService struct {
	provider  ports.IdentityProvider
	decoder   ports.CredentialDecoder
	directory ports.UserDirectory
	sessions  ports.SessionStore
	carts     ports.CartStore
	roles     ports.RoleMapper
}

// NewSessionService constructs a new SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	return &SessionService{
		provider:  opts.Provider,
		decoder:   opts.Decoder,
		directory: opts.Directory,
		sessions:  opts.Sessions,
		carts:     opts.Carts,
		roles:     opts.Roles,
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an authentication flow and returns the provider auth URL with state and nonce.
func (s *SessionService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	input := ports.BeginInput{RedirectURL: redirectURL}
	authURL, state, nonce, err := s.provider.Begin(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	// SessionID resumes an existing session when set; a fresh session is
	// created otherwise.
	SessionID string
	Code      string
	State     string
	Nonce     string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Session domainauth.Session

	// NeedsRegistration is set when the identity authenticated at the
	// provider but has no account in the user directory. The session then
	// carries the decoded identity so the registration form can prefill.
	NeedsRegistration bool
}

// CompleteLogin completes an authentication flow: it exchanges the code for
// identity claims, validates the credential against the user directory, and
// either authenticates the session or flags it for registration.
func (s *SessionService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	exchangeInput := ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	}
	result, err := s.provider.Exchange(ctx, exchangeInput)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	claims := result.Claims
	if claims.Email == "" && s.decoder != nil {
		// Some providers return an opaque credential with no claims in the
		// exchange response; fall back to decoding it locally.
		decoded, decodeErr := s.decoder.Decode(result.Credential)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode credential: %w", decodeErr)
		}
		claims = decoded
	}

	session := s.resumeOrCreate(ctx, input.SessionID)
	session = domainauth.SetIdentity(session, claims)

	validation, err := s.directory.ValidateIdentity(ctx, result.Credential)
	if apperrors.IsNotRegistered(err) {
		// Keep the decoded identity so registration can prefill, but the
		// session stays unauthenticated.
		if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
			return nil, fmt.Errorf("save session: %w", saveErr)
		}
		return &CompleteLoginResult{Session: session, NeedsRegistration: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("validate identity: %w", err)
	}

	role := s.roles.Map(validation.Account.Role)
	session, err = domainauth.LoginAs(session, validation.Token, validation.Account, role)
	if err != nil {
		// The login transition refused; persist the identity-only session so
		// the failure does not lose what the user already proved.
		if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
			return nil, errors.Join(err, fmt.Errorf("save session: %w", saveErr))
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "login refused")
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &CompleteLoginResult{Session: session}, nil
}

// RegisterInput groups parameters for registering a new account.
type RegisterInput struct {
	SessionID string
	Email     string
	UserName  string
	Password  string
	Role      domainauth.Role
	RoleCode  int
	PhoneNo   string
	Address   string
	Remarks   string
}

// Register creates an account with the user directory and marks the session
// registered. The submitted role is stored on the session as given, even
// when it is outside the known enumeration; authorization always re-checks
// against the enumeration, so an unrecognized role never grants access.
func (s *SessionService) Register(ctx context.Context, input RegisterInput) (*domainauth.Session, error) {
	if input.Email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	if input.UserName == "" {
		return nil, apperrors.ValidationField("userName", "user name is required")
	}

	reg := ports.Registration{
		LoginID:   input.Email,
		UserName:  input.UserName,
		Password:  base64.StdEncoding.EncodeToString([]byte(input.Password)),
		Role:      input.RoleCode,
		PhoneNo:   input.PhoneNo,
		Address:   input.Address,
		Remarks:   input.Remarks,
		CreatedOn: time.Now().UTC().Format(time.RFC3339),
		IsActive:  true,
	}
	if err := s.directory.Register(ctx, reg); err != nil {
		return nil, fmt.Errorf("register account: %w", err)
	}

	role := input.Role
	if role == domainauth.RoleUnknown {
		role = s.roles.Map(input.RoleCode)
	}

	session := s.resumeOrCreate(ctx, input.SessionID)
	session = domainauth.Register(session, input.Email, role)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// Logout resets the session to its empty state and drops the session cart.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if s.carts != nil {
		if err := s.carts.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
	}
	return nil
}

// resumeOrCreate loads the identified session, or starts a fresh one when
// the ID is absent or no longer stored.
func (s *SessionService) resumeOrCreate(ctx context.Context, sessionID string) domainauth.Session {
	if sessionID != "" {
		if existing, err := s.sessions.Get(ctx, sessionID); err == nil {
			return existing
		}
	}
	session := domainauth.EmptySession()
	session.ID = generateSessionID()
	return session
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
