package report

import (
	"strings"
	"time"

	"github.com/radstadt/rental-admin/internal/models"
)

// FormatDate turns YYYY-MM-DD into DD.MM.YYYY for display. Anything that
// doesn't look like an ISO date renders as-is; an absent field renders empty.
func FormatDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// FormatTimestamp turns an ISO 8601 timestamp into "DD.MM.YYYY HH:mm".
// Unparseable input renders as an empty placeholder.
func FormatTimestamp(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}

// UnitIDs joins the booked bikes' asset tags, or a dash placeholder when the
// booking references none.
func UnitIDs(b models.Booking) string {
	if len(b.Bikes) == 0 {
		return "–"
	}
	ids := make([]string, len(b.Bikes))
	for i, bike := range b.Bikes {
		ids[i] = bike.UnitID
	}
	return strings.Join(ids, ", ")
}

// BikeCount is the number of bikes on the booking.
func BikeCount(b models.Booking) int {
	return len(b.Bikes)
}
