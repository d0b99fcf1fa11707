// Package report derives the booking page's views from one fetched list:
// the all-time table plus the pickups/returns partitions for a day or month.
// Everything here is pure; no I/O, no mutation of the input.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/radstadt/rental-admin/internal/models"
)

// Report holds the three derived views. Pickups and Returns are only
// populated when Partitioned is true; in "all" mode those sections are
// hidden entirely.
type Report struct {
	All         []models.Booking
	Pickups     []models.Booking
	Returns     []models.Booking
	Partitioned bool
}

// SortByCreatedAtDesc returns a copy sorted most-recent-first. The sort is
// stable, so sorting an already-sorted list is a no-op.
func SortByCreatedAtDesc(bookings []models.Booking) []models.Booking {
	sorted := make([]models.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseTimestamp(sorted[i].CreatedAt).After(parseTimestamp(sorted[j].CreatedAt))
	})
	return sorted
}

// Partition splits the (already substring-filtered) list by the query's view
// type. A booking that starts and ends on the selected date appears in both
// pickups and returns; the partitions are not mutually exclusive. Relative
// order from the input is preserved, not re-sorted.
func Partition(bookings []models.Booking, query models.BookingQuery) Report {
	r := Report{All: bookings}
	switch query.ViewType {
	case models.ViewDaily:
		r.Partitioned = true
		for _, b := range bookings {
			if b.StartDate == query.Date {
				r.Pickups = append(r.Pickups, b)
			}
			if b.EndDate == query.Date {
				r.Returns = append(r.Returns, b)
			}
		}
	case models.ViewMonthly:
		r.Partitioned = true
		for _, b := range bookings {
			if strings.HasPrefix(b.StartDate, query.Month) {
				r.Pickups = append(r.Pickups, b)
			}
			if strings.HasPrefix(b.EndDate, query.Month) {
				r.Returns = append(r.Returns, b)
			}
		}
	}
	return r
}

// FilterBikes keeps bikes whose unitId contains the unit filter and whose
// algoliaObjectId contains the algolia filter, case-insensitively. Empty
// filters match everything; order is preserved.
func FilterBikes(bikes []models.Bike, unit, algolia string) []models.Bike {
	unit = strings.ToLower(unit)
	algolia = strings.ToLower(algolia)
	out := make([]models.Bike, 0, len(bikes))
	for _, b := range bikes {
		if strings.Contains(strings.ToLower(b.UnitID), unit) &&
			strings.Contains(strings.ToLower(b.AlgoliaObjectID), algolia) {
			out = append(out, b)
		}
	}
	return out
}

// FilterBookingsByUnit keeps bookings where any referenced bike's unitId
// contains the filter, case-insensitively.
func FilterBookingsByUnit(bookings []models.Booking, unit string) []models.Booking {
	if unit == "" {
		return bookings
	}
	unit = strings.ToLower(unit)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		for _, bike := range b.Bikes {
			if strings.Contains(strings.ToLower(bike.UnitID), unit) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// FilterWorkshopByDate keeps bookings on the given day; an empty date keeps
// everything. The store scoping already happened server-side.
func FilterWorkshopByDate(bookings []models.WorkshopBooking, date string) []models.WorkshopBooking {
	if date == "" {
		return bookings
	}
	out := make([]models.WorkshopBooking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

func parseTimestamp(iso string) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}
