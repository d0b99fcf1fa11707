package workshops

// Row is one workshop slot booking.
type Row struct {
	ID        string
	BookingID string
	Hour      string
	Mutating  bool
}

// ViewData backs the workshops view: the store selector, the date filter,
// and the slot table.
type ViewData struct {
	Stores []string
	Store  string
	Date   string
	Rows   []Row
	Alert  string
}
