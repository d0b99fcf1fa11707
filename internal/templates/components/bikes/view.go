// Package bikes renders the rental bikes page: filterable table plus the
// add/edit dialog.
package bikes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	alerttempl "github.com/radstadt/rental-admin/internal/templates/components/alert"
)

// Page is the full rental-bikes page body.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Rental Bikes Management</h1>`)
		b.WriteString(`<button class="primary" hx-get="/rental-bikes/form" hx-target="#modal">Add New Bike</button>`)
		b.WriteString(`<form class="filters" id="bike-filters">`)
		fmt.Fprintf(&b,
			`<input type="text" name="unit" placeholder="Filter by Unit ID" value="%s" `+
				`hx-get="/rental-bikes/rows" hx-trigger="keyup changed delay:300ms" `+
				`hx-target="#bikes-table" hx-include="#bike-filters">`,
			templ.EscapeString(d.FilterUnit))
		fmt.Fprintf(&b,
			`<input type="text" name="algolia" placeholder="Filter by Algolia Object ID" value="%s" `+
				`hx-get="/rental-bikes/rows" hx-trigger="keyup changed delay:300ms" `+
				`hx-target="#bikes-table" hx-include="#bike-filters">`,
			templ.EscapeString(d.FilterAlgolia))
		b.WriteString(`</form>`)
		b.WriteString(`<div id="modal"></div>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="bikes-table">`); err != nil {
			return err
		}
		if err := Table(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Table is the filterable table partial swapped into #bikes-table.
func Table(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := alerttempl.Alert(d.Alert).Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, `<p class="count">Total Bikes: %d</p>`, len(d.Bikes))
		b.WriteString(`<table class="data"><thead><tr>` +
			`<th>Unit ID</th><th>Algolia Object ID</th><th>Price per Day (€)</th>` +
			`<th>Active</th><th>Actions</th></tr></thead><tbody>`)
		for _, bike := range d.Bikes {
			id := templ.EscapeString(bike.ID)
			toggleLabel := "Off"
			if bike.IsActive {
				toggleLabel = "On"
			}
			disabled := ""
			if bike.Mutating {
				disabled = " disabled"
			}
			fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td>`,
				templ.EscapeString(bike.UnitID),
				templ.EscapeString(bike.AlgoliaObjectID),
				templ.EscapeString(bike.PricePerDay))
			fmt.Fprintf(&b,
				`<td><button class="toggle" hx-put="/rental-bikes/%s/toggle" hx-target="#bikes-table"%s>%s</button></td>`,
				id, disabled, toggleLabel)
			fmt.Fprintf(&b,
				`<td><button hx-get="/rental-bikes/form?id=%s" hx-target="#modal">Edit</button> `+
					`<button class="danger" hx-delete="/rental-bikes/%s" hx-confirm="Löschen?" hx-target="#bikes-table"%s>Delete</button></td></tr>`,
				id, id, disabled)
		}
		if len(d.Bikes) == 0 {
			b.WriteString(`<tr><td colspan="5" class="empty">No bikes found.</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Form is the add/edit dialog swapped into #modal.
func Form(f FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		title := "Add New Bike"
		action := `hx-post="/rental-bikes"`
		submit := "Add"
		if f.ID != "" {
			title = "Edit Bike"
			action = fmt.Sprintf(`hx-put="/rental-bikes/%s"`, templ.EscapeString(f.ID))
			submit = "Update"
		}
		checked := ""
		if f.IsActive {
			checked = " checked"
		}
		fmt.Fprintf(&b, `<div class="dialog"><h2>%s</h2><form %s hx-target="#bikes-table">`, title, action)
		fmt.Fprintf(&b, `<label>Unit ID<input type="text" name="unitId" value="%s"></label>`,
			templ.EscapeString(f.UnitID))
		fmt.Fprintf(&b, `<label>Algolia Object ID<input type="text" name="algoliaObjectId" value="%s"></label>`,
			templ.EscapeString(f.AlgoliaObjectID))
		fmt.Fprintf(&b, `<label>Price per Day<input type="number" step="0.01" name="pricePerDay" value="%s"></label>`,
			templ.EscapeString(f.PricePerDay))
		fmt.Fprintf(&b, `<label>Active<input type="checkbox" name="isActive"%s></label>`, checked)
		fmt.Fprintf(&b,
			`<div class="dialog__actions">`+
				`<button type="button" hx-get="/rental-bikes/form/close" hx-target="#modal">Cancel</button>`+
				`<button type="submit">%s</button></div>`, submit)
		b.WriteString(`</form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ModalClear closes the dialog out-of-band after a table swap.
func ModalClear() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="modal" hx-swap-oob="innerHTML"></div>`)
		return err
	})
}
