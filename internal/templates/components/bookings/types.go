package bookings

// Row is one booking, formatted for display.
type Row struct {
	CreatedAt    string
	BookingID    string
	BikeCount    int
	UnitIDs      string
	TotalPrice   string
	StartDate    string
	StartHour    string
	EndDate      string
	EndHour      string
	Sportlerpass string
	Mutating     bool
}

// ViewData backs the whole bookings view: controls, the overall table, and
// the pickups/returns partitions when a day or month is selected.
type ViewData struct {
	ViewType    string
	Date        string
	Month       string
	FilterUnit  string
	PeriodLabel string
	Overall     []Row
	Pickups     []Row
	Returns     []Row
	Partitioned bool
	Alert       string
}
