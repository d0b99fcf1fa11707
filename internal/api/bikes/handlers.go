// internal/api/bikes/handlers.go
package bikes

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/radstadt/rental-admin/internal/api/htmx"
	"github.com/radstadt/rental-admin/internal/gateway"
	"github.com/radstadt/rental-admin/internal/models"
	"github.com/radstadt/rental-admin/internal/report"
	"github.com/radstadt/rental-admin/internal/templates/components/nav"
	bikestempl "github.com/radstadt/rental-admin/internal/templates/components/bikes"
	"github.com/radstadt/rental-admin/internal/templates/layouts"
	"github.com/radstadt/rental-admin/internal/viewmodel"
)

// Filters are purely client-side: substring matching over the last-fetched
// list. Changing them never triggers a fetch.
type Filters struct {
	Unit    string
	Algolia string
}

var (
	gw *gateway.Client
	vm *viewmodel.Collection[models.Bike, Filters]
)

func InitHandlers(client *gateway.Client) {
	gw = client
	vm = viewmodel.New(func(ctx context.Context, _ Filters) ([]models.Bike, error) {
		return client.ListBikes(ctx)
	}, viewmodel.AutoConfirm)
}

func HandleBikesPage(w http.ResponseWriter, r *http.Request) {
	if err := vm.Refresh(r.Context()); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to fetch bikes")
	}
	component := layouts.Base("Rental Bikes", nav.Header(), bikestempl.Page(pageData("")))
	component.Render(r.Context(), w)
}

func HandleBikeRows(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vm.EditFilter(func(f *Filters) {
		f.Unit = query.Get("unit")
		f.Algolia = query.Get("algolia")
	})
	component := bikestempl.Table(pageData(""))
	component.Render(r.Context(), w)
}

func HandleBikeForm(w http.ResponseWriter, r *http.Request) {
	form := bikestempl.FormData{IsActive: true}
	if id := r.URL.Query().Get("id"); id != "" {
		for _, b := range vm.Snapshot().Items {
			if b.ID == id {
				form = bikestempl.FormData{
					ID:              b.ID,
					UnitID:          b.UnitID,
					AlgoliaObjectID: b.AlgoliaObjectID,
					PricePerDay:     b.PricePerDay.String(),
					IsActive:        b.IsActive,
				}
				break
			}
		}
	}
	component := bikestempl.Form(form)
	component.Render(r.Context(), w)
}

func HandleBikeFormClose(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(""))
}

func HandleBikeCreate(w http.ResponseWriter, r *http.Request) {
	payload, err := payloadFromForm(r)
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	var alertMsg string
	err = vm.Create(r.Context(), func(ctx context.Context) error {
		_, err := gw.CreateBike(ctx, payload)
		return err
	})
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to create bike")
		alertMsg = err.Error()
	}
	renderTable(w, r, alertMsg)
}

func HandleBikeUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	payload, err := payloadFromForm(r)
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	var alertMsg string
	err = vm.Update(r.Context(), func(ctx context.Context) error {
		_, err := gw.UpdateBike(ctx, id, payload)
		return err
	})
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("bike_id", id).Msg("Failed to update bike")
		alertMsg = err.Error()
	}
	renderTable(w, r, alertMsg)
}

// HandleBikeToggle flips isActive only. The local copy changes only after
// the backend confirmed; an error leaves the prior value visible.
func HandleBikeToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var current *models.Bike
	for _, b := range vm.Snapshot().Items {
		if b.ID == id {
			bike := b
			current = &bike
			break
		}
	}
	if current == nil {
		renderTable(w, r, "")
		return
	}

	next := !current.IsActive
	var alertMsg string
	err := vm.Patch(r.Context(), id,
		func(ctx context.Context) error { return gw.SetBikeActive(ctx, id, next) },
		func(b models.Bike) bool { return b.ID == id },
		func(b *models.Bike) { b.IsActive = next },
	)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("bike_id", id).Msg("Failed to toggle bike")
		alertMsg = err.Error()
	}
	renderTable(w, r, alertMsg)
}

func HandleBikeDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var alertMsg string
	deleted, err := vm.Delete(r.Context(), id, "Löschen?",
		func(ctx context.Context) error { return gw.DeleteBike(ctx, id) },
		func(b models.Bike) bool { return b.ID == id },
	)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("bike_id", id).Msg("Failed to delete bike")
		alertMsg = err.Error()
	}
	if deleted {
		if err := vm.Refresh(r.Context()); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to re-fetch bikes")
		}
	}
	renderTable(w, r, alertMsg)
}

func payloadFromForm(r *http.Request) (gateway.BikePayload, error) {
	if err := r.ParseForm(); err != nil {
		return gateway.BikePayload{}, err
	}
	return gateway.BikePayload{
		UnitID:          r.FormValue("unitId"),
		AlgoliaObjectID: r.FormValue("algoliaObjectId"),
		PricePerDay:     r.FormValue("pricePerDay"),
		IsActive:        r.FormValue("isActive") != "",
	}, nil
}

func renderTable(w http.ResponseWriter, r *http.Request, alertMsg string) {
	component := bikestempl.Table(pageData(alertMsg))
	component.Render(r.Context(), w)
	if htmx.IsRequest(r) {
		bikestempl.ModalClear().Render(r.Context(), w)
	}
}

func pageData(alertMsg string) bikestempl.PageData {
	state := vm.Snapshot()
	if alertMsg == "" && state.LastError != nil {
		alertMsg = state.LastError.Error()
	}
	filtered := report.FilterBikes(state.Items, state.Filters.Unit, state.Filters.Algolia)
	rows := make([]bikestempl.Bike, len(filtered))
	for i, b := range filtered {
		rows[i] = bikestempl.Bike{
			ID:              b.ID,
			UnitID:          b.UnitID,
			AlgoliaObjectID: b.AlgoliaObjectID,
			PricePerDay:     b.PricePerDay.String(),
			IsActive:        b.IsActive,
			Mutating:        vm.Mutating(b.ID),
		}
	}
	return bikestempl.PageData{
		FilterUnit:    state.Filters.Unit,
		FilterAlgolia: state.Filters.Algolia,
		Bikes:         rows,
		Alert:         alertMsg,
	}
}
