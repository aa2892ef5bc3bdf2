package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/ports"
)

var (
	_ ports.OrderAPI     = (*Client)(nil)
	_ ports.DashboardAPI = (*Client)(nil)
)

func (c *Client) OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var out []model.Order
	if err := c.getJSON(ctx, "Order/all", url.Values{"status": {string(status)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Voucher(ctx context.Context, orderID string) (model.Voucher, error) {
	var out model.Voucher
	err := c.getJSON(ctx, "Order/getvoucher/"+url.PathEscape(orderID), nil, &out)
	return out, err
}

func (c *Client) DeliveryAccess(ctx context.Context, in model.DeliveryAccess) error {
	return c.sendJSON(ctx, http.MethodPost, "Order/delivery-access", nil, in, nil)
}

func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var out model.Dashboard
	err := c.getJSON(ctx, "Dashboard/Dashboard", nil, &out)
	return out, err
}
