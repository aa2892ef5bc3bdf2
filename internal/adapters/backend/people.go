package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/ports"
)

var _ ports.PeopleAPI = (*Client)(nil)

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.getJSON(ctx, "User", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterUser(ctx context.Context, in model.UserInput) error {
	return c.sendJSON(ctx, http.MethodPost, "User/register", nil, in, nil)
}

// AddSupplier sends the name as a query parameter; the endpoint takes no body.
func (c *Client) AddSupplier(ctx context.Context, name string) error {
	return c.sendJSON(ctx, http.MethodPost, "User/addsupplier", url.Values{"name": {name}}, nil, nil)
}

func (c *Client) SupplierHistory(ctx context.Context) ([]model.SupplierHistory, error) {
	var out []model.SupplierHistory
	if err := c.getJSON(ctx, "Product/Supplierhistory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	var out []model.Doctor
	if err := c.getJSON(ctx, "Booking/doctors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddDoctor(ctx context.Context, in model.Doctor) error {
	return c.sendJSON(ctx, http.MethodPost, "Booking/add-doctor", nil, in, nil)
}

func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.getJSON(ctx, "Booking/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddBooking(ctx context.Context, in model.BookingInput) error {
	return c.sendJSON(ctx, http.MethodPost, "Booking/add-booking", nil, in, nil)
}
