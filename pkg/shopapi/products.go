package shopapi

import (
	"context"
	"net/http"
)

// Product fetches a product through the public catalog endpoint. No bearer
// token is attached and no refresh cycle applies; guests use this to expand
// their local cart into display-ready rows.
func (c *Client) Product(ctx context.Context, productID string) (*Product, error) {
	var product Product
	err := c.doPublic(ctx, http.MethodGet, "/products/"+productID, nil, &product, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
