package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/radstadt/rental-admin/internal/models"
)

// BikePayload is the body for add and update. PricePerDay stays a string on
// the wire, matching what the form submits and the backend accepts.
type BikePayload struct {
	UnitID          string `json:"unitId"`
	AlgoliaObjectID string `json:"algoliaObjectId"`
	PricePerDay     string `json:"pricePerDay"`
	IsActive        bool   `json:"isActive"`
}

func (c *Client) ListBikes(ctx context.Context) ([]models.Bike, error) {
	var env struct {
		Bikes []models.Bike `json:"bikes"`
	}
	if err := c.get(ctx, "/api/getRentalBikes", nil, &env); err != nil {
		return nil, err
	}
	return env.Bikes, nil
}

func (c *Client) CreateBike(ctx context.Context, payload BikePayload) (models.Bike, error) {
	var bike models.Bike
	if err := c.do(ctx, http.MethodPost, "/api/addRentalBike", nil, payload, &bike); err != nil {
		return models.Bike{}, err
	}
	return bike, nil
}

func (c *Client) UpdateBike(ctx context.Context, id string, payload BikePayload) (models.Bike, error) {
	var bike models.Bike
	if err := c.do(ctx, http.MethodPut, "/api/updateRentalBike/"+url.PathEscape(id), nil, payload, &bike); err != nil {
		return models.Bike{}, err
	}
	return bike, nil
}

// SetBikeActive patches only the isActive flag, leaving the rest of the
// record untouched server-side.
func (c *Client) SetBikeActive(ctx context.Context, id string, active bool) error {
	patch := struct {
		IsActive bool `json:"isActive"`
	}{IsActive: active}
	return c.do(ctx, http.MethodPut, "/api/updateRentalBike/"+url.PathEscape(id), nil, patch, nil)
}

func (c *Client) DeleteBike(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/deleteRentalBike/"+url.PathEscape(id))
}
