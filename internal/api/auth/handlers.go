package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/radstadt/rental-admin/internal/api/authgate"
	authtempl "github.com/radstadt/rental-admin/internal/templates/components/authpages"
)

var signInURL string

// InitHandlers wires the hosted sign-in location the login page links to.
func InitHandlers(hostedSignInURL string) {
	signInURL = hostedSignInURL
}

// HandleLoginPage renders the login page with the hosted sign-in link.
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	component := authtempl.Login(signInURL)
	component.Render(r.Context(), w)
}

// HandleDeniedPage renders the access-denied page with a logout action.
func HandleDeniedPage(w http.ResponseWriter, r *http.Request) {
	component := authtempl.Denied()
	component.Render(r.Context(), w)
}

// HandleLogout expires the provider session cookie and returns to login.
// The provider's own session state is its business; we only drop ours.
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	log.Ctx(r.Context()).Info().Msg("Session cleared")
	http.Redirect(w, r, authgate.LoginPath, http.StatusFound)
}

// HandleCallback lands the redirect after hosted sign-in. The session cookie
// is already set by the provider; the gate takes it from here.
func HandleCallback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, authgate.DefaultPath, http.StatusFound)
}
