package shopapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CustomerCart fetches the authenticated customer's server-side cart.
func (c *Client) CustomerCart(ctx context.Context) (*Cart, error) {
	var cart Cart
	err := c.doAuthed(ctx, http.MethodGet, "/cart/customer", nil, nil, &cart, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds a product to the server-side cart.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}
	return c.doAuthed(ctx, http.MethodPost, "/cart/items", nil, body, nil, http.StatusOK)
}

// UpdateCartItem sets the quantity of an existing cart item.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) error {
	query := url.Values{"quantity": {strconv.Itoa(quantity)}}
	return c.doAuthed(ctx, http.MethodPut, "/cart/items/"+itemID, query, nil, nil, http.StatusOK)
}

// DeleteCartItem removes a cart item entirely.
func (c *Client) DeleteCartItem(ctx context.Context, itemID string) error {
	return c.doAuthed(ctx, http.MethodDelete, "/cart/items/"+itemID, nil, nil, nil, http.StatusNoContent)
}

// MergeCart submits guest cart lines to the server merge endpoint. The
// server sums quantities into any existing rows for the same product.
func (c *Client) MergeCart(ctx context.Context, items []MergeItem) error {
	body := map[string]any{"items": items}
	return c.doAuthed(ctx, http.MethodPost, "/cart/merge", nil, body, nil, http.StatusOK)
}
