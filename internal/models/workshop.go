// internal/models/workshop.go
package models

// WorkshopBooking is one workshop slot booking. Read-only plus delete; the
// date is only a filter key, never edited here.
type WorkshopBooking struct {
	ID        string `json:"id"`
	BookingID string `json:"bookingId"`
	Hour      string `json:"hour"`
	Date      string `json:"date"`
}
