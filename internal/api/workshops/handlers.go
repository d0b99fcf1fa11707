// internal/api/workshops/handlers.go
package workshops

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/radstadt/rental-admin/internal/gateway"
	"github.com/radstadt/rental-admin/internal/models"
	"github.com/radstadt/rental-admin/internal/report"
	"github.com/radstadt/rental-admin/internal/templates/components/nav"
	workshopstempl "github.com/radstadt/rental-admin/internal/templates/components/workshops"
	"github.com/radstadt/rental-admin/internal/templates/layouts"
	"github.com/radstadt/rental-admin/internal/viewmodel"
)

// Filters: the store scopes the server-side query; the date only narrows
// the fetched list client-side.
type Filters struct {
	Store string
	Date  string
}

var (
	gw     *gateway.Client
	vm     *viewmodel.Collection[models.WorkshopBooking, Filters]
	stores []string
)

func InitHandlers(client *gateway.Client, workshopStores []string) {
	gw = client
	stores = workshopStores
	vm = viewmodel.New(func(ctx context.Context, f Filters) ([]models.WorkshopBooking, error) {
		if f.Store == "" {
			return nil, nil
		}
		return client.ListWorkshopBookings(ctx, f.Store)
	}, viewmodel.AutoConfirm)
}

func HandleWorkshopsPage(w http.ResponseWriter, r *http.Request) {
	component := layouts.Base("Workshops", nav.Header(), workshopstempl.Page(viewData("")))
	component.Render(r.Context(), w)
}

func HandleWorkshopRows(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	vm.EditFilter(func(f *Filters) { f.Date = params.Get("date") })

	if store := params.Get("store"); store != vm.Filters().Store {
		if err := vm.SetFilter(r.Context(), func(f *Filters) { f.Store = store }); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Str("store", store).Msg("Failed to fetch workshop bookings")
		}
	}

	component := workshopstempl.View(viewData(""))
	component.Render(r.Context(), w)
}

// HandleWorkshopDelete removes the booking after the backend confirmed; no
// re-fetch, the local removal is enough for this read-only list.
func HandleWorkshopDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var alertMsg string
	_, err := vm.Delete(r.Context(), id, "Are you sure you want to delete this booking?",
		func(ctx context.Context) error { return gw.DeleteWorkshopBooking(ctx, id) },
		func(b models.WorkshopBooking) bool { return b.ID == id },
	)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("workshop_booking_id", id).Msg("Failed to delete workshop booking")
		alertMsg = err.Error()
	}
	component := workshopstempl.View(viewData(alertMsg))
	component.Render(r.Context(), w)
}

func viewData(alertMsg string) workshopstempl.ViewData {
	state := vm.Snapshot()
	if alertMsg == "" && state.LastError != nil {
		alertMsg = state.LastError.Error()
	}

	filtered := report.FilterWorkshopByDate(state.Items, state.Filters.Date)
	rows := make([]workshopstempl.Row, len(filtered))
	for i, b := range filtered {
		rows[i] = workshopstempl.Row{
			ID:        b.ID,
			BookingID: b.BookingID,
			Hour:      b.Hour,
			Mutating:  vm.Mutating(b.ID),
		}
	}
	return workshopstempl.ViewData{
		Stores: stores,
		Store:  state.Filters.Store,
		Date:   state.Filters.Date,
		Rows:   rows,
		Alert:  alertMsg,
	}
}
