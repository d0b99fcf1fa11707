// Package workshops renders the workshop bookings page.
package workshops

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	alerttempl "github.com/radstadt/rental-admin/internal/templates/components/alert"
)

// Page is the full workshops page body.
func Page(d ViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Workshops Bookings</h1>`); err != nil {
			return err
		}
		return View(d).Render(ctx, w)
	})
}

// View is the partial swapped on every control change.
func View(d ViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form id="workshops-view">`)
		b.WriteString(`<div class="controls">`)
		b.WriteString(`<select name="store" hx-get="/workshops/rows" ` +
			`hx-target="#workshops-view" hx-include="#workshops-view" hx-swap="outerHTML">`)
		b.WriteString(`<option value="">Select Workshop</option>`)
		for _, store := range d.Stores {
			selected := ""
			if store == d.Store {
				selected = " selected"
			}
			escaped := templ.EscapeString(store)
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, escaped, selected, escaped)
		}
		b.WriteString(`</select>`)
		fmt.Fprintf(&b,
			`<input type="date" name="date" value="%s" `+
				`hx-get="/workshops/rows" hx-target="#workshops-view" hx-include="#workshops-view" hx-swap="outerHTML">`,
			templ.EscapeString(d.Date))
		b.WriteString(`</div>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := alerttempl.Alert(d.Alert).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString(`<table class="data"><thead><tr>` +
			`<th>Time Slot</th><th>Booking ID</th><th>Actions</th></tr></thead><tbody>`)
		for _, r := range d.Rows {
			disabled := ""
			if r.Mutating {
				disabled = " disabled"
			}
			fmt.Fprintf(&b,
				`<tr><td>%s</td><td>%s</td>`+
					`<td><button class="danger" hx-delete="/workshops/bookings/%s" `+
					`hx-confirm="Are you sure you want to delete this booking?" `+
					`hx-target="#workshops-view" hx-swap="outerHTML"%s>Delete Booking</button></td></tr>`,
				templ.EscapeString(r.Hour),
				templ.EscapeString(r.BookingID),
				templ.EscapeString(r.ID),
				disabled)
		}
		if len(d.Rows) == 0 {
			b.WriteString(`<tr><td colspan="3" class="empty">No bookings found.</td></tr>`)
		}
		b.WriteString(`</tbody></table></form>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
