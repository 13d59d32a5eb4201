package shopapi

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies and persists the bearer tokens used by the client.
// The storefront backs it with the session token store so that every
// mutation is write-through to persisted state.
type TokenSource interface {
	// AccessToken returns the current access token, "" when none is stored.
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the current refresh token, "" when none is stored.
	RefreshToken(ctx context.Context) (string, error)

	// StoreAccessToken persists a newly minted access token.
	StoreAccessToken(ctx context.Context, token string) error

	// ClearAccessToken removes the stored access token, forcing guest mode
	// on subsequent calls.
	ClearAccessToken(ctx context.Context) error
}

// Client talks to the remote commerce API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens TokenSource
}

// NewClient creates a commerce API client. The TokenSource may be nil for a
// purely unauthenticated client (public catalog access only).
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokens: tokens,
	}
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
