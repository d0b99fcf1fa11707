package gateway

import (
	"context"
	"net/url"

	"github.com/radstadt/rental-admin/internal/models"
)

func (c *Client) ListBookings(ctx context.Context, query models.BookingQuery) ([]models.Booking, error) {
	params := url.Values{}
	params.Set("viewType", string(query.ViewType))
	if d := query.ServerDate(); d != "" {
		params.Set("date", d)
	}

	var env struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.get(ctx, "/api/getRentalBookings", params, &env); err != nil {
		return nil, err
	}
	return env.Bookings, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/deleteRentalBooking/"+url.PathEscape(id))
}
