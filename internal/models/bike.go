// internal/models/bike.go
package models

import "github.com/shopspring/decimal"

// Bike is one rental bike as the booking backend returns it. The backend owns
// the record; we only hold a transient copy for display and edits.
type Bike struct {
	ID              string          `json:"id"`
	UnitID          string          `json:"unitId"`
	AlgoliaObjectID string          `json:"algoliaObjectId"`
	PricePerDay     decimal.Decimal `json:"pricePerDay"`
	IsActive        bool            `json:"isActive"`
}
