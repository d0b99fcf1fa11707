// internal/models/booking.go
package models

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// ViewType selects how the bookings list is scoped server-side.
type ViewType string

const (
	ViewAll     ViewType = "all"
	ViewDaily   ViewType = "daily"
	ViewMonthly ViewType = "monthly"
)

// BookingQuery is the coarse, server-side part of the bookings filter.
// Date is an ISO day (YYYY-MM-DD), Month an ISO year-month (YYYY-MM);
// exactly one of them is active, gated by ViewType.
type BookingQuery struct {
	ViewType ViewType
	Date     string
	Month    string
}

// ServerDate returns the value for the backend's "date" query parameter,
// or "" when the view type doesn't take one.
func (q BookingQuery) ServerDate() string {
	switch q.ViewType {
	case ViewDaily:
		return q.Date
	case ViewMonthly:
		return q.Month
	}
	return ""
}

// Ready reports whether the query is complete enough to issue a fetch.
func (q BookingQuery) Ready() bool {
	switch q.ViewType {
	case ViewDaily:
		return q.Date != ""
	case ViewMonthly:
		return q.Month != ""
	}
	return q.ViewType == ViewAll
}

// BookedBike is a weak reference to a bike by its asset tag; bookings do not
// own bike records.
type BookedBike struct {
	UnitID string `json:"unitId"`
}

// Flag tolerates the backend sending either a string or a boolean. The
// sportlerpass field has shipped as both.
type Flag string

func (f *Flag) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flag(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*f = Flag(strconv.FormatBool(b))
	default:
		*f = Flag(data)
	}
	return nil
}

// Booking is one rental booking. Dates are kept as ISO strings and compared
// lexically; startDate <= endDate is the backend's invariant, not checked here.
type Booking struct {
	BookingID    string          `json:"bookingId"`
	Bikes        []BookedBike    `json:"bikes"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	StartHour    string          `json:"startHour"`
	EndHour      string          `json:"endHour"`
	Sportlerpass Flag            `json:"sportlerpass"`
	CreatedAt    string          `json:"createdAt"`
}
