// Package authpages renders the two pages outside the management route set.
package authpages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Login is the sign-in page. The button points at the provider's hosted
// sign-in; there is no local credential handling.
func Login(signInURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="login"><div class="login__content">`+
				`<h1 class="login__title">Rental Booking</h1>`+
				`<a class="login__button" href="`+templ.EscapeString(signInURL)+`">LOGIN / SIGNUP</a>`+
				`<span class="login__footer">Radstadt Austria</span>`+
				`</div></div>`)
		return err
	})
}

// Denied is the access-denied page shown to authenticated accounts the
// authorization policy rejects.
func Denied() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="denied"><h1>Access Denied</h1>`+
				`<p>We're sorry, but your account is not authorized to access this `+
				`management dashboard. Please contact your administrator if you believe `+
				`this is an error.</p>`+
				`<a class="denied__logout" href="/logout">Log Out</a>`+
				`</div>`)
		return err
	})
}

// Rental is the public placeholder page.
func Rental() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="rental-placeholder"><h1>Rental</h1>`+
				`<p>Nothing to see here yet.</p></div>`)
		return err
	})
}
