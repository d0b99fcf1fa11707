// internal/api/bookings/handlers.go
package bookings

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/radstadt/rental-admin/internal/gateway"
	"github.com/radstadt/rental-admin/internal/models"
	"github.com/radstadt/rental-admin/internal/report"
	bookingstempl "github.com/radstadt/rental-admin/internal/templates/components/bookings"
	"github.com/radstadt/rental-admin/internal/templates/components/nav"
	"github.com/radstadt/rental-admin/internal/templates/layouts"
	"github.com/radstadt/rental-admin/internal/viewmodel"
)

// Filters combine the server-side query (viewType plus its date) with the
// client-side unit substring. Only query changes hit the network.
type Filters struct {
	Query models.BookingQuery
	Unit  string
}

var (
	gw *gateway.Client
	vm *viewmodel.Collection[models.Booking, Filters]
)

func InitHandlers(client *gateway.Client) {
	gw = client
	vm = viewmodel.New(func(ctx context.Context, f Filters) ([]models.Booking, error) {
		return client.ListBookings(ctx, f.Query)
	}, viewmodel.AutoConfirm)
	vm.EditFilter(func(f *Filters) {
		f.Query = models.BookingQuery{
			ViewType: models.ViewAll,
			Date:     today(),
			Month:    thisMonth(),
		}
	})
}

func HandleBookingsPage(w http.ResponseWriter, r *http.Request) {
	if err := vm.Refresh(r.Context()); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to fetch bookings")
	}
	component := layouts.Base("Rental Bookings", nav.Header(), bookingstempl.Page(viewData("")))
	component.Render(r.Context(), w)
}

func HandleBookingRows(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	next := models.BookingQuery{
		ViewType: models.ViewType(params.Get("viewType")),
		Date:     params.Get("date"),
		Month:    params.Get("month"),
	}
	switch next.ViewType {
	case models.ViewDaily:
		if next.Date == "" {
			next.Date = today()
		}
		next.Month = ""
	case models.ViewMonthly:
		if next.Month == "" {
			next.Month = thisMonth()
		}
		next.Date = ""
	default:
		// Switching back to "all" resets the date selection.
		next = models.BookingQuery{ViewType: models.ViewAll}
	}

	vm.EditFilter(func(f *Filters) { f.Unit = params.Get("unit") })

	if current := vm.Filters().Query; next != current {
		if next.Ready() {
			if err := vm.SetFilter(r.Context(), func(f *Filters) { f.Query = next }); err != nil {
				log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to fetch bookings")
			}
		} else {
			vm.EditFilter(func(f *Filters) { f.Query = next })
		}
	}

	component := bookingstempl.View(viewData(""))
	component.Render(r.Context(), w)
}

func HandleBookingDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var alertMsg string
	deleted, err := vm.Delete(r.Context(), id, "Diese Buchung wirklich löschen?",
		func(ctx context.Context) error { return gw.DeleteBooking(ctx, id) },
		func(b models.Booking) bool { return b.BookingID == id },
	)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("booking_id", id).Msg("Failed to delete booking")
		alertMsg = err.Error()
	}
	if deleted {
		if err := vm.Refresh(r.Context()); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to re-fetch bookings")
		}
	}
	component := bookingstempl.View(viewData(alertMsg))
	component.Render(r.Context(), w)
}

func viewData(alertMsg string) bookingstempl.ViewData {
	state := vm.Snapshot()
	if alertMsg == "" && state.LastError != nil {
		alertMsg = state.LastError.Error()
	}

	sorted := report.SortByCreatedAtDesc(state.Items)
	filtered := report.FilterBookingsByUnit(sorted, state.Filters.Unit)
	rep := report.Partition(filtered, state.Filters.Query)

	return bookingstempl.ViewData{
		ViewType:    string(state.Filters.Query.ViewType),
		Date:        state.Filters.Query.Date,
		Month:       state.Filters.Query.Month,
		FilterUnit:  state.Filters.Unit,
		PeriodLabel: periodLabel(state.Filters.Query),
		Overall:     toRows(rep.All),
		Pickups:     toRows(rep.Pickups),
		Returns:     toRows(rep.Returns),
		Partitioned: rep.Partitioned,
		Alert:       alertMsg,
	}
}

func toRows(bookings []models.Booking) []bookingstempl.Row {
	rows := make([]bookingstempl.Row, len(bookings))
	for i, b := range bookings {
		rows[i] = bookingstempl.Row{
			CreatedAt:    report.FormatTimestamp(b.CreatedAt),
			BookingID:    b.BookingID,
			BikeCount:    report.BikeCount(b),
			UnitIDs:      report.UnitIDs(b),
			TotalPrice:   b.TotalPrice.String(),
			StartDate:    report.FormatDate(b.StartDate),
			StartHour:    b.StartHour,
			EndDate:      report.FormatDate(b.EndDate),
			EndHour:      b.EndHour,
			Sportlerpass: string(b.Sportlerpass),
			Mutating:     vm.Mutating(b.BookingID),
		}
	}
	return rows
}

func periodLabel(q models.BookingQuery) string {
	switch q.ViewType {
	case models.ViewDaily:
		return "for " + report.FormatDate(q.Date)
	case models.ViewMonthly:
		return "for " + q.Month
	}
	return ""
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func thisMonth() string {
	return time.Now().Format("2006-01")
}
