// Package authgate maps the external authentication state to one of three
// mutually exclusive route sets. It re-derives the state on every request
// from {authenticated, user}; it keeps no transition history and its only
// side effect is the redirect decision.
package authgate

import (
	"context"
	"strings"
)

// User is the authenticated staff identity as the identity provider reports
// it. A nil user with Authenticated=true means the provider accepted the
// session but could not produce an account.
type User struct {
	ID    string
	Email string
	Name  string
}

// Identity is what the identity-provider integration derives per request.
type Identity struct {
	Authenticated bool
	User          *User
}

// State is the gate's decision for a request.
type State int

const (
	// StateUnauthenticated: only the login route is reachable.
	StateUnauthenticated State = iota
	// StateDenied: authenticated but not authorized; only the access-denied
	// route (and logout) is reachable.
	StateDenied
	// StateAuthorized: the full management route set is reachable.
	StateAuthorized
)

// Policy decides whether an authenticated user may use the dashboard. It is
// injected so the allowlist behavior is a swappable strategy, not hard-coded.
type Policy func(*User) bool

// AllowAny authorizes every authenticated user that has an account.
func AllowAny(u *User) bool {
	return u != nil
}

// Allowlist authorizes only the given email addresses, case-insensitively.
func Allowlist(emails []string) Policy {
	allowed := make(map[string]bool, len(emails))
	for _, e := range emails {
		allowed[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return func(u *User) bool {
		if u == nil {
			return false
		}
		return allowed[strings.ToLower(u.Email)]
	}
}

// Resolve derives the gate state for one request.
func Resolve(id Identity, policy Policy) State {
	if !id.Authenticated {
		return StateUnauthenticated
	}
	if id.User == nil || !policy(id.User) {
		return StateDenied
	}
	return StateAuthorized
}

const (
	LoginPath    = "/login"
	DeniedPath   = "/user-not-allowed"
	LogoutPath   = "/logout"
	DefaultPath  = "/rental-bookings"
	RentalPath   = "/rental"
	CallbackPath = "/auth/callback"
)

// managedPrefixes are the routes the authorized state exposes. Sub-paths
// (row partials, per-record actions) live under their page's prefix.
var managedPrefixes = []string{
	"/workshops",
	"/rental-bikes",
	"/rental-bookings",
}

// Public reports whether a path bypasses the gate entirely: the rental
// placeholder, static assets, health, favicon, and the provider callback.
func Public(path string) bool {
	if path == RentalPath || path == "/health" || path == "/favicon.ico" || path == CallbackPath {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// RedirectTarget returns where to send a request whose path is outside the
// current state's route set. ok=false means the path is reachable as-is.
func RedirectTarget(s State, path string) (target string, redirect bool) {
	switch s {
	case StateUnauthenticated:
		if path == LoginPath {
			return "", false
		}
		return LoginPath, true
	case StateDenied:
		if path == DeniedPath || path == LogoutPath {
			return "", false
		}
		return DeniedPath, true
	default:
		if path == LogoutPath {
			return "", false
		}
		for _, prefix := range managedPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return "", false
			}
		}
		return DefaultPath, true
	}
}

type userContextKey struct{}
type stateContextKey struct{}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the gated user, or nil when the request never
// passed the gate (public paths) or no user was present.
func UserFromContext(ctx context.Context) *User {
	if ctx == nil {
		return nil
	}
	user, ok := ctx.Value(userContextKey{}).(*User)
	if !ok {
		return nil
	}
	return user
}

func ContextWithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, s)
}

func StateFromContext(ctx context.Context) State {
	if ctx == nil {
		return StateUnauthenticated
	}
	s, ok := ctx.Value(stateContextKey{}).(State)
	if !ok {
		return StateUnauthenticated
	}
	return s
}
