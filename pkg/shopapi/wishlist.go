package shopapi

import (
	"context"
	"net/http"
)

// ToggleWishlist flips a product's membership in the server-side wishlist.
func (c *Client) ToggleWishlist(ctx context.Context, productID string) error {
	body := map[string]string{"productId": productID}
	return c.doAuthed(ctx, http.MethodPost, "/api/wishlist/toggle", nil, body, nil, http.StatusOK)
}

// Wishlist fetches the customer's server-side wishlist.
func (c *Client) Wishlist(ctx context.Context) ([]WishlistItem, error) {
	var items []WishlistItem
	err := c.doAuthed(ctx, http.MethodGet, "/api/wishlist", nil, nil, &items, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MergeWishlist submits guest wishlist product ids to the server merge
// endpoint. Membership is a set, so re-merging an id is a no-op server-side.
func (c *Client) MergeWishlist(ctx context.Context, productIDs []string) error {
	body := map[string]any{"productIds": productIDs}
	return c.doAuthed(ctx, http.MethodPost, "/api/wishlist/merge", nil, body, nil, http.StatusOK)
}
