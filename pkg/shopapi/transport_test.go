package shopapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakleaftoys/storefront/pkg/shopapi"
)

// memTokens is an in-memory TokenSource for tests.
type memTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func (m *memTokens) AccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, nil
}

func (m *memTokens) RefreshToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memTokens) StoreAccessToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = token
	return nil
}

func (m *memTokens) ClearAccessToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	return nil
}

func TestBearerAttachment(t *testing.T) {
	t.Parallel()

	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(shopapi.Cart{})
	}))
	defer upstream.Close()

	t.Run("token present", func(t *testing.T) {
		client := shopapi.NewClient(upstream.URL, &memTokens{access: "tok-1"})
		_, err := client.CustomerCart(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Bearer tok-1", gotAuth)
	})

	t.Run("no token sends unauthenticated", func(t *testing.T) {
		client := shopapi.NewClient(upstream.URL, &memTokens{})
		_, err := client.CustomerCart(context.Background())
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}

func TestRefreshRetryCycle(t *testing.T) {
	t.Parallel()

	// Upstream rejects "stale", accepts "fresh", and mints "fresh" on refresh.
	var refreshCalls int
	var cartAuths []string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart/customer", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		cartAuths = append(cartAuths, auth)
		if auth != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
			return
		}
		_ = json.NewEncoder(w).Encode(shopapi.Cart{Items: []shopapi.CartItem{
			{ID: "1", ProductID: "p1", Quantity: 2, Price: 1500},
		}})
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != "refresh-ok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh"})
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	tokens := &memTokens{access: "stale", refresh: "refresh-ok"}
	client := shopapi.NewClient(upstream.URL, tokens)

	cart, err := client.CustomerCart(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// Retried attempt carried the refreshed token and it was persisted.
	require.Equal(t, []string{"Bearer stale", "Bearer fresh"}, cartAuths)
	require.Equal(t, 1, refreshCalls)
	require.Equal(t, "fresh", tokens.access)
}

func TestSingleRetryInvariant(t *testing.T) {
	t.Parallel()

	// Upstream rejects every cart request, even after a "successful" refresh,
	// so the retried attempt fails with 401 again. There must be exactly one
	// refresh cycle; the second failure propagates as-is.
	var cartCalls, refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart/customer", func(w http.ResponseWriter, r *http.Request) {
		cartCalls++
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh"})
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	client := shopapi.NewClient(upstream.URL, &memTokens{access: "stale", refresh: "r1"})

	_, err := client.CustomerCart(context.Background())
	require.Error(t, err)
	require.True(t, shopapi.IsAuthError(err))
	require.Equal(t, 2, cartCalls)
	require.Equal(t, 1, refreshCalls)
}

func TestNoRefreshTokenFailsImmediately(t *testing.T) {
	t.Parallel()

	var refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart/customer", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	client := shopapi.NewClient(upstream.URL, &memTokens{access: "stale"})

	_, err := client.CustomerCart(context.Background())
	require.True(t, shopapi.IsAuthError(err))
	require.Zero(t, refreshCalls)
}

func TestFailedRefreshClearsAccessToken(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart/customer", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "access_denied"})
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	tokens := &memTokens{access: "stale", refresh: "revoked"}
	client := shopapi.NewClient(upstream.URL, tokens)

	_, err := client.CustomerCart(context.Background())
	require.True(t, shopapi.IsAuthError(err))

	// The original failure is surfaced, not the refresh failure.
	var apiErr *shopapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	require.Empty(t, tokens.access)
}

func TestRefreshResponseMissingTokenCountsAsFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart/customer", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	tokens := &memTokens{access: "stale", refresh: "r1"}
	client := shopapi.NewClient(upstream.URL, tokens)

	_, err := client.CustomerCart(context.Background())
	require.True(t, shopapi.IsAuthError(err))
	require.Empty(t, tokens.access)
}

func TestPublicProductLookupSkipsTokenPlumbing(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/p9", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(shopapi.Product{ID: "p9", Name: "Plush Fox", Price: 2500})
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	client := shopapi.NewClient(upstream.URL, &memTokens{access: "tok"})

	product, err := client.Product(context.Background(), "p9")
	require.NoError(t, err)
	require.Equal(t, "Plush Fox", product.Name)
}
