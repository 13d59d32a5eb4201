package shopapi

import (
	"context"
	"net/http"
)

// Login authenticates a customer and returns the minted token pair. The
// caller is responsible for persisting the tokens; the client does not start
// using them until they appear in its TokenSource.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var pair TokenPair
	if err := c.doPublic(ctx, http.MethodPost, "/auth/customer/login", body, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}
