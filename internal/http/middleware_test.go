package httpx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
)

// okHandler records whether it ran and which session it saw.
type okHandler struct {
	called  bool
	session *domainauth.Session
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.session = GetSessionFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogging_PassesThrough(t *testing.T) {
	inner := &okHandler{}
	handler := Logging(discardLogger())(inner)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, inner.called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecover_TurnsPanicInto500(t *testing.T) {
	handler := Recover(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth_NoCookie_API(t *testing.T) {
	inner := &okHandler{}
	handler := RequireAuth(&mockAuthService{})(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, inner.called)
}

func TestRequireAuth_NoCookie_BrowserRedirects(t *testing.T) {
	inner := &okHandler{}
	handler := RequireAuth(&mockAuthService{})(inner)

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fcheckout", w.Header().Get("Location"))
	assert.False(t, inner.called)
}

func TestRequireAuth_ValidSession(t *testing.T) {
	inner := &okHandler{}
	handler := RequireAuth(&mockAuthService{})(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, inner.called)
	require.NotNil(t, inner.session)
	assert.Equal(t, "test-session", inner.session.ID)
}

func TestRequireAuth_LookupFailureTreatedAsAnonymous(t *testing.T) {
	svc := &mockAuthService{
		getSessionFunc: func(context.Context, string) (*domainauth.Session, error) {
			return nil, errors.New("session not found")
		},
	}
	handler := RequireAuth(svc)(&okHandler{})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "expired"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_WrongRole_API(t *testing.T) {
	svc := &mockAuthService{
		getSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			session := registeredSession(sessionID)
			session.User.Role = domainauth.RoleDelivery
			return &session, nil
		},
	}
	inner := &okHandler{}
	handler := RequireRole(svc, domainauth.RoleRetailer)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, inner.called)
}

func TestRequireRole_WrongRole_BrowserRedirects(t *testing.T) {
	svc := &mockAuthService{
		getSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			session := registeredSession(sessionID)
			session.User.Role = domainauth.RoleDelivery
			return &session, nil
		},
	}
	handler := RequireRole(svc, domainauth.RoleRetailer)(&okHandler{})

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fcheckout", w.Header().Get("Location"))
}

func TestRequireRole_AllowedRole(t *testing.T) {
	inner := &okHandler{}
	handler := RequireRole(&mockAuthService{}, domainauth.RoleRetailer)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, inner.called)
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	svc := &mockAuthService{
		getSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			session := registeredSession(sessionID)
			session.User.Role = domainauth.RoleAdmin
			return &session, nil
		},
	}
	inner := &okHandler{}
	handler := RequireRole(svc, domainauth.RoleRetailer, domainauth.RoleAdmin)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, inner.called)
}

func TestOptionalAuth_WithAndWithoutSession(t *testing.T) {
	inner := &okHandler{}
	handler := OptionalAuth(&mockAuthService{})(inner)

	// Without a session cookie the request proceeds anonymously
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.True(t, inner.called)
	assert.Nil(t, inner.session)

	// With a session cookie the session lands in the context
	inner.called, inner.session = false, nil
	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.True(t, inner.called)
	require.NotNil(t, inner.session)
	assert.Equal(t, "test-session", inner.session.ID)
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		accept  string
		browser bool
	}{
		{"api path", "/api/cart", "text/html", false},
		{"static path", "/static/app.js", "text/html", false},
		{"html accept", "/cart", "text/html,application/xhtml+xml", true},
		{"json accept", "/cart", "application/json", false},
		{"no accept header", "/cart", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.browser, isBrowserRequest(req))
		})
	}
}

func TestBrowserDetection_SetsContext(t *testing.T) {
	var detected bool
	handler := BrowserDetection()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		detected = IsBrowserRequest(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, detected)
}
