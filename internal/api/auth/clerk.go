// Package auth integrates the Clerk identity provider. Sessions, tokens,
// and the sign-in UI are Clerk's; this package only verifies the session
// cookie and derives the gate's identity from it.
package auth

import (
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/rs/zerolog/log"

	"github.com/radstadt/rental-admin/internal/api/authgate"
)

const sessionCookieName = "__session"

// clerkInitialized indicates whether the Clerk SDK has been initialized
var clerkInitialized bool

// InitClerk initializes the Clerk SDK with the secret key.
func InitClerk(secretKey string) {
	if secretKey == "" {
		log.Warn().Msg("Clerk secret key not configured")
		return
	}
	clerk.SetKey(secretKey)
	clerkInitialized = true
	log.Info().Msg("Clerk SDK initialized")
}

// WithClerkSession validates the Clerk session cookie and adds the session
// claims to the request context. Requests without a valid session continue
// without claims; the gate decides what that means.
func WithClerkSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !clerkInitialized {
			next.ServeHTTP(w, r)
			return
		}

		sessionToken, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := jwt.Verify(r.Context(), &jwt.VerifyParams{
			Token: sessionToken.Value,
		})
		if err != nil {
			log.Ctx(r.Context()).Debug().Err(err).Msg("Invalid Clerk session token")
			next.ServeHTTP(w, r)
			return
		}

		ctx := clerk.ContextWithSessionClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromRequest derives the gate identity from the verified session.
// Authenticated means the session claims checked out; the user is present
// only when Clerk can still produce the account behind them.
func IdentityFromRequest(r *http.Request) authgate.Identity {
	claims, ok := clerk.SessionClaimsFromContext(r.Context())
	if !ok || claims == nil {
		return authgate.Identity{}
	}

	id := authgate.Identity{Authenticated: true}

	clerkUser, err := user.Get(r.Context(), claims.Subject)
	if err != nil {
		log.Ctx(r.Context()).Warn().
			Err(err).
			Str("clerk_user_id", claims.Subject).
			Msg("Failed to load Clerk user for session")
		return id
	}

	u := &authgate.User{ID: clerkUser.ID}
	if clerkUser.FirstName != nil {
		u.Name = *clerkUser.FirstName
	}
	if clerkUser.PrimaryEmailAddressID != nil {
		for _, email := range clerkUser.EmailAddresses {
			if email.ID == *clerkUser.PrimaryEmailAddressID {
				u.Email = email.EmailAddress
				break
			}
		}
	}
	id.User = u
	return id
}
