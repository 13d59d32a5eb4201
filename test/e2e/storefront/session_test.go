package storefront_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakleaftoys/storefront/pkg/shopapi"
)

type sessionResponse struct {
	Mode     string `json:"mode"`
	Username string `json:"username"`
}

// TestSessionStartsAsGuest verifies a fresh gateway reports guest mode.
func TestSessionStartsAsGuest(t *testing.T) {
	baseURL, _ := setupGateway(t)

	var session sessionResponse
	resp := doJSON(t, http.MethodGet, baseURL+"/v1/session", nil, &session)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "guest", session.Mode)
	require.Empty(t, session.Username)
}

// TestLoginLogoutRoundTrip covers the full authenticate-then-sign-out cycle.
func TestLoginLogoutRoundTrip(t *testing.T) {
	baseURL, _ := setupGateway(t)

	var session sessionResponse
	resp := doJSON(t, http.MethodPost, baseURL+"/v1/session/login", map[string]string{
		"username": customerUsername,
		"password": customerPassword,
	}, &session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "authenticated", session.Mode)
	require.Equal(t, customerUsername, session.Username)

	resp = doJSON(t, http.MethodPost, baseURL+"/v1/session/logout", nil, &session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "guest", session.Mode)
}

// TestLoginRejectsBadCredentials verifies the upstream rejection surfaces
// as 401 and the session stays guest.
func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL, _ := setupGateway(t)

	resp := doJSON(t, http.MethodPost, baseURL+"/v1/session/login", map[string]string{
		"username": customerUsername,
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var session sessionResponse
	doJSON(t, http.MethodGet, baseURL+"/v1/session", nil, &session)
	require.Equal(t, "guest", session.Mode)
}

// TestLoginValidation verifies malformed login requests are rejected before
// the upstream is involved.
func TestLoginValidation(t *testing.T) {
	baseURL, _ := setupGateway(t)

	resp := doJSON(t, http.MethodPost, baseURL+"/v1/session/login", map[string]string{
		"username": "",
		"password": "",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestLoginMergesGuestStateIntoAccount verifies guest cart and wishlist lines
// accumulated before login land in the server-side state and the local copies
// are cleared.
func TestLoginMergesGuestStateIntoAccount(t *testing.T) {
	baseURL, commerce := setupGateway(t)

	// Accumulate guest state.
	resp := doJSON(t, http.MethodPost, baseURL+"/v1/cart/items", map[string]any{
		"productId": "train-01", "quantity": 2,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, baseURL+"/v1/wishlist/toggle", map[string]string{
		"productId": "bear-02",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	login(t, baseURL)

	// The server cart now holds the merged line.
	require.Equal(t, []shopapi.CartItem{
		{ID: "101", ProductID: "train-01", Quantity: 2, Price: 2495, ProductName: "Wooden Train"},
	}, commerce.cartSnapshot())

	// The wishlist entry followed.
	var items []struct {
		ProductID string `json:"productId"`
	}
	doJSON(t, http.MethodGet, baseURL+"/v1/wishlist", nil, &items)
	require.Len(t, items, 1)
	require.Equal(t, "bear-02", items[0].ProductID)

	// After logout the local guest stores are empty: the merge consumed them.
	doJSON(t, http.MethodPost, baseURL+"/v1/session/logout", nil, nil)

	var count struct {
		Count int `json:"count"`
	}
	doJSON(t, http.MethodGet, baseURL+"/v1/cart/count", nil, &count)
	require.Zero(t, count.Count)
}

// TestLoginRateLimited verifies the strict limit guards the credential
// endpoint.
func TestLoginRateLimited(t *testing.T) {
	baseURL, _ := setupGateway(t)

	var lastStatus int
	for range 6 {
		resp := doJSON(t, http.MethodPost, baseURL+"/v1/session/login", map[string]string{
			"username": customerUsername,
			"password": "wrong",
		}, nil)
		lastStatus = resp.StatusCode
	}

	require.Equal(t, http.StatusTooManyRequests, lastStatus)
}
