package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	"github.com/tradeport/tradeport-ui-api/internal/service"
)

// defaultSessionCookieTTL bounds the session cookie lifetime when the
// handlers are not configured with an explicit TTL. It matches the
// session store default so cookie and stored session expire together.
const defaultSessionCookieTTL = 8 * time.Hour

// AuthServiceInterface defines the interface for session service operations.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	Register(ctx context.Context, input service.RegisterInput) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	SessionTTL   time.Duration
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles the login initiation endpoint.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	// Get the redirect URI from query params, default to root
	redirectURI := r.URL.Query().Get("redirect_uri")
	if redirectURI == "" {
		redirectURI = "/"
	}

	// Allow only relative paths (no scheme/host), must start with "/"
	redirectURI = safeRedirectPath(redirectURI)

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	// Store state, nonce, and the original redirect URI in secure cookies
	h.setOAuthCookies(w, r, oauthCookieParams{State: result.State, Nonce: result.Nonce, RedirectURI: redirectURI})

	// Redirect to the identity provider
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback handles the OAuth callback endpoint.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	// Verify state against the cookie set when the flow began
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}

	nonce := ""
	if nonceCookie, cookieErr := r.Cookie("oauth_nonce"); cookieErr == nil {
		nonce = nonceCookie.Value
	}

	// Resume an existing session when the browser already carries one so
	// an anonymous cart survives sign-in.
	sessionID := ""
	if sessionCookie, cookieErr := r.Cookie("session_id"); cookieErr == nil {
		sessionID = sessionCookie.Value
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		SessionID: sessionID,
		Code:      code,
		State:     state,
		Nonce:     nonce,
	})

	// OAuth cookies are single-use regardless of the outcome
	h.clearCookie(w, r, "oauth_state")
	h.clearCookie(w, r, "oauth_nonce")

	if err != nil {
		h.logger().Warn("login failed", slog.Any("error", err))
		h.clearCookie(w, r, "post_login_redirect")
		WriteServiceError(w, err)
		return
	}

	h.setSessionCookie(w, r, result.Session)
	redirectURI := h.getPostLoginRedirect(w, r)

	// An identity without an account continues to registration, keeping
	// the original destination for after the account is created.
	if result.NeedsRegistration {
		u := url.URL{Path: "/register"}
		q := url.Values{}
		q.Set("redirect_uri", redirectURI)
		u.RawQuery = q.Encode()
		http.Redirect(w, r, u.String(), http.StatusFound)
		return
	}

	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// registerRequest is the JSON body for account registration. Role carries
// the backend numeric role code, matching the registration form.
type registerRequest struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password"`
	Role     int    `json:"role"`
	PhoneNo  string `json:"phoneNo"`
	Address  string `json:"address"`
	Remarks  string `json:"remarks"`
}

// Register handles account creation for an authenticated identity.
// POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sessionID := ""
	if sessionCookie, err := r.Cookie("session_id"); err == nil {
		sessionID = sessionCookie.Value
	}

	session, err := h.Svc.Register(r.Context(), service.RegisterInput{
		SessionID: sessionID,
		Email:     req.Email,
		UserName:  req.UserName,
		Password:  req.Password,
		RoleCode:  req.Role,
		PhoneNo:   req.PhoneNo,
		Address:   req.Address,
		Remarks:   req.Remarks,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	h.setSessionCookie(w, r, *session)
	WriteJSON(w, http.StatusCreated, sessionStatusPayload(session))
}

// Logout handles the logout endpoint.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie("session_id"); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			// The cookie is cleared either way; a stale server-side
			// session expires on its own.
			h.logger().Warn("logout failed", slog.Any("error", logoutErr))
		}
	}
	h.clearCookie(w, r, "session_id")

	isAJAX := strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
	if isAJAX {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": "/",
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("session_id")
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Session is invalid or expired, clear the cookie
		h.clearCookie(w, r, "session_id")
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, sessionStatusPayload(session))
}

// sessionStatusPayload shapes a session for the status endpoint.
func sessionStatusPayload(session *domainauth.Session) map[string]any {
	payload := map[string]any{
		"authenticated": session.IsAuthenticated,
		"registered":    session.IsRegistered,
	}
	if session.User != nil {
		payload["user"] = map[string]any{
			"email":   session.User.Email,
			"name":    session.User.Name,
			"user_id": session.User.UserID,
			"role":    session.User.Role,
		}
	}
	return payload
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// oauthCookieParams groups values needed to set OAuth cookies (≤3 params rule).
type oauthCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

// setOAuthCookies stores OAuth state, nonce, and the post-login redirect in secure cookies.
func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    p.State,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_nonce",
		Value:    p.Nonce,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "post_login_redirect",
		Value:    p.RedirectURI,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})
}

// setSessionCookie writes the session cookie for the given session.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain
	ttl := h.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionCookieTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    s.ID,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// getPostLoginRedirect returns the post-login redirect URL and clears the cookie.
func (h *AuthHandlers) getPostLoginRedirect(w http.ResponseWriter, r *http.Request) string {
	redirectURI := "/"
	if redirectCookie, err := r.Cookie("post_login_redirect"); err == nil {
		// Re-validate: allow only relative paths
		redirectURI = safeRedirectPath(redirectCookie.Value)
		h.clearCookie(w, r, "post_login_redirect")
	}
	return redirectURI
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
