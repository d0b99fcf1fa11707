// Package nav renders the header shown only to authorized users.
package nav

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Header is the top bar with the page links and the logout action.
func Header() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<header class="topbar">`+
				`<span class="topbar__title">Management Dashboard</span>`+
				`<nav class="topbar__links">`+
				`<a href="/rental-bikes">Rental-Bikes</a>`+
				`<a href="/rental-bookings">Rental-Bookings</a>`+
				`<a href="/workshops">Workshops</a>`+
				`<a href="/logout" class="topbar__logout">Log Out</a>`+
				`</nav></header>`)
		return err
	})
}
