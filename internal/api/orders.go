package api

import (
	"context"
	"encoding/json"
	"net/url"
)

// ListOrders fetches orders matching the filter.
func (c *Client) ListOrders(ctx context.Context, filter OrderFilter) ([]Order, error) {
	const op = "list orders"

	path := "/orders"
	if filter.Status != "" {
		query := url.Values{}
		query.Set("status", string(filter.Status))
		path += "?" + query.Encode()
	}

	data, err := c.do(ctx, op, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[Order](data, "orders"), nil
}

// CreateOrder places an order and returns the server's copy when the
// response carries one.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	const op = "create order"

	data, err := c.do(ctx, op, "POST", "/orders", req)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := json.Unmarshal(data, &order); err == nil && order.ID != "" {
		return &order, nil
	}
	return nil, nil
}

// UpdateOrderStatus sets an order's lifecycle state. Any known status may
// be requested; the server is the authority on transition legality.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status Status) error {
	const op = "update order status"

	body := struct {
		Status Status `json:"status"`
	}{Status: status}

	_, err := c.do(ctx, op, "PATCH", "/orders/"+url.PathEscape(id)+"/status", body)
	return err
}

// DeleteOrder removes the order with the given id.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	const op = "delete order"

	_, err := c.do(ctx, op, "DELETE", "/orders/"+url.PathEscape(id), nil)
	return err
}
