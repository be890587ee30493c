package route

// Package route contains the navigation guard predicate. It is a pure
// function of (session, requirement); it holds no state and is evaluated on
// every navigation attempt.

import (
	"net/url"
	"slices"
	"strings"

	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
)

// LoginPath is the login entry point every denied navigation redirects to.
// Denials redirect here rather than to a dedicated "unauthorized" page; that
// behavior is part of the product contract.
const LoginPath = "/login"

// Requirement declares what a page demands of the current session.
// AllowedRoles implies RequireAuth: a role-gated page is never reachable
// unauthenticated.
type Requirement struct {
	RequireAuth  bool
	AllowedRoles []domainauth.Role
}

// RequiresAuth builds a requirement that only demands authentication.
func RequiresAuth() Requirement {
	return Requirement{RequireAuth: true}
}

// RequiresRole builds a requirement demanding authentication plus membership
// in one of the allowed roles.
func RequiresRole(allowed ...domainauth.Role) Requirement {
	return Requirement{RequireAuth: true, AllowedRoles: allowed}
}

// Decision is the outcome of evaluating a requirement. When Allowed is false
// RedirectTo carries the login entry point with the original destination
// preserved for post-login redirect.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Evaluate decides whether navigation to destination is permitted under the
// given session state.
func Evaluate(session domainauth.Session, req Requirement, destination string) Decision {
	if !req.RequireAuth && len(req.AllowedRoles) == 0 {
		return Decision{Allowed: true}
	}
	if !session.IsAuthenticated {
		return deny(destination)
	}
	if len(req.AllowedRoles) > 0 && !slices.Contains(req.AllowedRoles, session.Role()) {
		return deny(destination)
	}
	return Decision{Allowed: true}
}

func deny(destination string) Decision {
	return Decision{Allowed: false, RedirectTo: loginRedirect(destination)}
}

// loginRedirect builds the login URL, remembering the original destination.
// Only safe relative paths are remembered; anything else falls back to the
// bare login path.
func loginRedirect(destination string) string {
	if !isSafeRelativePath(destination) || destination == LoginPath {
		return LoginPath
	}
	q := url.Values{}
	q.Set("redirect_uri", destination)
	return LoginPath + "?" + q.Encode()
}

func isSafeRelativePath(p string) bool {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	u, err := url.Parse(p)
	if err != nil || u.IsAbs() || u.Host != "" {
		return false
	}
	return true
}
