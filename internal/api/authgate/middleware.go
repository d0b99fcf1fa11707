package authgate

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// IdentitySource derives the request's identity from the provider session.
type IdentitySource func(*http.Request) Identity

// Gate enforces the route sets. The identity source and the authorization
// policy are both injected.
type Gate struct {
	identify IdentitySource
	policy   Policy
}

func New(identify IdentitySource, policy Policy) *Gate {
	return &Gate{identify: identify, policy: policy}
}

// Middleware redirects requests whose path is outside the current state's
// route set and stores the state and user in context for the pages.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Public(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		id := g.identify(r)
		state := Resolve(id, g.policy)

		if target, redirect := RedirectTarget(state, r.URL.Path); redirect {
			log.Ctx(r.Context()).Debug().
				Str("path", r.URL.Path).
				Str("target", target).
				Int("gate_state", int(state)).
				Msg("Route outside gate state, redirecting")
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		ctx := ContextWithState(r.Context(), state)
		if id.User != nil {
			ctx = ContextWithUser(ctx, id.User)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
