package bikes

// Bike is one table row, already formatted for display.
type Bike struct {
	ID              string
	UnitID          string
	AlgoliaObjectID string
	PricePerDay     string
	IsActive        bool
	Mutating        bool
}

// PageData backs both the full page and the table partial.
type PageData struct {
	FilterUnit    string
	FilterAlgolia string
	Bikes         []Bike
	Alert         string
}

// FormData backs the add/edit dialog. An empty ID means add.
type FormData struct {
	ID              string
	UnitID          string
	AlgoliaObjectID string
	PricePerDay     string
	IsActive        bool
}
