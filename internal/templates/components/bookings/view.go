// Package bookings renders the rental bookings page: the view-type controls,
// the overall table, and the pickups/returns partitions.
package bookings

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	alerttempl "github.com/radstadt/rental-admin/internal/templates/components/alert"
)

// Page is the full rental-bookings page body.
func Page(d ViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Rental Bookings Management</h1>`); err != nil {
			return err
		}
		return View(d).Render(ctx, w)
	})
}

// View is the partial swapped on every control change: controls plus tables
// together, so a view-type switch can show or hide the date inputs.
func View(d ViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form id="bookings-view">`)
		b.WriteString(`<div class="controls">`)
		b.WriteString(selectViewType(d.ViewType))
		switch d.ViewType {
		case "daily":
			fmt.Fprintf(&b,
				`<input type="date" name="date" value="%s" `+
					`hx-get="/rental-bookings/rows" hx-target="#bookings-view" hx-include="#bookings-view" hx-swap="outerHTML">`,
				templ.EscapeString(d.Date))
		case "monthly":
			fmt.Fprintf(&b,
				`<input type="month" name="month" value="%s" `+
					`hx-get="/rental-bookings/rows" hx-target="#bookings-view" hx-include="#bookings-view" hx-swap="outerHTML">`,
				templ.EscapeString(d.Month))
		}
		fmt.Fprintf(&b,
			`<input type="text" name="unit" placeholder="Filter by Unit ID" value="%s" `+
				`hx-get="/rental-bookings/rows" hx-trigger="keyup changed delay:300ms" `+
				`hx-target="#bookings-view" hx-include="#bookings-view" hx-swap="outerHTML">`,
			templ.EscapeString(d.FilterUnit))
		b.WriteString(`</div>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := alerttempl.Alert(d.Alert).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		fmt.Fprintf(&b, `<p class="count">Total Bookings: %d</p>`, len(d.Overall))
		fmt.Fprintf(&b, `<h2>Overall Bookings %s</h2>`, templ.EscapeString(d.PeriodLabel))
		b.WriteString(overallTable(d.Overall))
		if d.Partitioned {
			fmt.Fprintf(&b, `<h2>Pickups %s</h2>`, templ.EscapeString(d.PeriodLabel))
			b.WriteString(partitionTable(d.Pickups, "Start Hour", "No pickups.", func(r Row) string { return r.StartHour }))
			fmt.Fprintf(&b, `<h2>Returns %s</h2>`, templ.EscapeString(d.PeriodLabel))
			b.WriteString(partitionTable(d.Returns, "End Hour", "No returns.", func(r Row) string { return r.EndHour }))
		}
		b.WriteString(`</form>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func selectViewType(current string) string {
	var b strings.Builder
	b.WriteString(`<select name="viewType" hx-get="/rental-bookings/rows" ` +
		`hx-target="#bookings-view" hx-include="#bookings-view" hx-swap="outerHTML">`)
	for _, opt := range []struct{ value, label string }{
		{"all", "All"},
		{"daily", "Daily"},
		{"monthly", "Monthly"},
	} {
		selected := ""
		if opt.value == current {
			selected = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, opt.value, selected, opt.label)
	}
	b.WriteString(`</select>`)
	return b.String()
}

func overallTable(rows []Row) string {
	var b strings.Builder
	b.WriteString(`<table class="data"><thead><tr>` +
		`<th>Created At</th><th>Booking ID</th><th># Bikes</th><th>Unit IDs</th>` +
		`<th>Total (€)</th><th>Pickup Date</th><th>Pickup Hour</th>` +
		`<th>Return Date</th><th>Return Hour</th><th>Sportlerpass</th><th>Actions</th>` +
		`</tr></thead><tbody>`)
	for _, r := range rows {
		disabled := ""
		if r.Mutating {
			disabled = " disabled"
		}
		fmt.Fprintf(&b,
			`<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s€</td>`+
				`<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
			templ.EscapeString(r.CreatedAt),
			templ.EscapeString(r.BookingID),
			r.BikeCount,
			templ.EscapeString(r.UnitIDs),
			templ.EscapeString(r.TotalPrice),
			templ.EscapeString(r.StartDate),
			templ.EscapeString(r.StartHour),
			templ.EscapeString(r.EndDate),
			templ.EscapeString(r.EndHour),
			templ.EscapeString(r.Sportlerpass))
		fmt.Fprintf(&b,
			`<td><button class="danger" hx-delete="/rental-bookings/%s" `+
				`hx-confirm="Diese Buchung wirklich löschen?" hx-target="#bookings-view" hx-swap="outerHTML"%s>Delete</button></td></tr>`,
			templ.EscapeString(r.BookingID), disabled)
	}
	if len(rows) == 0 {
		b.WriteString(`<tr><td colspan="11" class="empty">No bookings found.</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

func partitionTable(rows []Row, hourHeader, emptyLabel string, hour func(Row) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<table class="data"><thead><tr>`+
		`<th>Booking ID</th><th># Bikes</th><th>Total (€)</th><th>%s</th>`+
		`</tr></thead><tbody>`, hourHeader)
	for _, r := range rows {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%d</td><td>%s€</td><td>%s</td></tr>`,
			templ.EscapeString(r.BookingID),
			r.BikeCount,
			templ.EscapeString(r.TotalPrice),
			templ.EscapeString(hour(r)))
	}
	if len(rows) == 0 {
		fmt.Fprintf(&b, `<tr><td colspan="4" class="empty">%s</td></tr>`, emptyLabel)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}
