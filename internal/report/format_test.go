package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radstadt/rental-admin/internal/models"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "10.05.2024", FormatDate("2024-05-10"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "whatever", FormatDate("whatever"))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "10.05.2024 14:30", FormatTimestamp("2024-05-10T14:30:00Z"))
	assert.Equal(t, "", FormatTimestamp(""))
	assert.Equal(t, "", FormatTimestamp("garbage"))
}

func TestUnitIDs(t *testing.T) {
	booking := models.Booking{Bikes: []models.BookedBike{{UnitID: "RB-001"}, {UnitID: "RB-002"}}}
	assert.Equal(t, "RB-001, RB-002", UnitIDs(booking))
	assert.Equal(t, "–", UnitIDs(models.Booking{}))
}
