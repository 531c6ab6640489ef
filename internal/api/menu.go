package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// ListMenu fetches catalog entries matching the filter. A non-empty Text
// routes to the full-text search endpoint; every other constraint goes to
// the filter endpoint as query parameters.
func (c *Client) ListMenu(ctx context.Context, filter MenuFilter) ([]MenuItem, error) {
	const op = "list menu"

	path := "/menu"
	query := url.Values{}

	if filter.Text != "" {
		path = "/menu/search"
		query.Set("q", filter.Text)
	} else {
		if filter.Category != "" {
			query.Set("category", string(filter.Category))
		}
		if filter.IsAvailable != nil {
			query.Set("isAvailable", strconv.FormatBool(*filter.IsAvailable))
		}
		if filter.MinPrice != nil {
			query.Set("minPrice", formatPrice(*filter.MinPrice))
		}
		if filter.MaxPrice != nil {
			query.Set("maxPrice", formatPrice(*filter.MaxPrice))
		}
	}

	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	data, err := c.do(ctx, op, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[MenuItem](data, "items", "menu"), nil
}

// CreateMenuItem creates a catalog entry and returns the server's copy,
// including the assigned id.
func (c *Client) CreateMenuItem(ctx context.Context, payload MenuItemPayload) (*MenuItem, error) {
	const op = "create menu item"

	data, err := c.do(ctx, op, "POST", "/menu", payload)
	if err != nil {
		return nil, err
	}

	return decodeItem(data)
}

// UpdateMenuItem replaces the catalog entry with the given id.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, payload MenuItemPayload) (*MenuItem, error) {
	const op = "update menu item"

	data, err := c.do(ctx, op, "PUT", "/menu/"+url.PathEscape(id), payload)
	if err != nil {
		return nil, err
	}

	return decodeItem(data)
}

// DeleteMenuItem removes the catalog entry with the given id.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	const op = "delete menu item"

	_, err := c.do(ctx, op, "DELETE", "/menu/"+url.PathEscape(id), nil)
	return err
}

// ToggleMenuAvailability flips the availability flag server-side. The
// request carries no body; the server owns the resulting state.
func (c *Client) ToggleMenuAvailability(ctx context.Context, id string) error {
	const op = "toggle availability"

	_, err := c.do(ctx, op, "PATCH", "/menu/"+url.PathEscape(id)+"/availability", nil)
	return err
}

// decodeItem decodes a single menu item, tolerating an {"item": ...} envelope.
func decodeItem(data []byte) (*MenuItem, error) {
	var item MenuItem
	if err := json.Unmarshal(data, &item); err == nil && item.ID != "" {
		return &item, nil
	}

	var envelope struct {
		Item *MenuItem `json:"item"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Item != nil {
		return envelope.Item, nil
	}

	// Some mutations answer with an empty body; that is still a success.
	return nil, nil
}

// formatPrice renders a price for a query parameter without trailing zeros.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
