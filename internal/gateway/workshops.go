package gateway

import (
	"context"
	"net/url"

	"github.com/radstadt/rental-admin/internal/models"
)

func (c *Client) ListWorkshopBookings(ctx context.Context, store string) ([]models.WorkshopBooking, error) {
	params := url.Values{}
	params.Set("store", store)

	var env struct {
		Bookings []models.WorkshopBooking `json:"bookings"`
	}
	if err := c.get(ctx, "/api/getBookings", params, &env); err != nil {
		return nil, err
	}
	return env.Bookings, nil
}

func (c *Client) DeleteWorkshopBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/deleteBooking/"+url.PathEscape(id))
}
