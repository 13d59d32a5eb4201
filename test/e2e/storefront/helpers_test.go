package storefront_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	httpapi "github.com/oakleaftoys/storefront/internal/storefront/http"
	"github.com/oakleaftoys/storefront/internal/storefront/service"
	"github.com/oakleaftoys/storefront/internal/storefront/signal"
	"github.com/oakleaftoys/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/oakleaftoys/storefront/pkg/shopapi"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

/*
 * Common helpers for storefront gateway end-to-end tests. The full HTTP
 * stack runs in-process against a temporary database and a stateful fake
 * of the remote commerce platform.
 */

const (
	customerUsername = "alice"
	customerPassword = "Password1!"
)

// setupGateway starts the full router against a fresh database and a fake
// commerce platform, returning the gateway base URL and the fake for
// scripting and assertions.
func setupGateway(t *testing.T) (string, *fakeCommerce) {
	t.Helper()

	commerce := newFakeCommerce()
	upstream := httptest.NewServer(commerce)
	t.Cleanup(upstream.Close)

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	api := shopapi.NewClient(upstream.URL, service.NewTokenSource(st.Tokens()))
	hub := signal.NewHub()
	logger := slogx.New(slogx.Config{Service: "storefront-gateway-test", Level: "error", Format: "text"})

	sessionService := &service.SessionService{Store: st, API: api, Hub: hub}
	cartService := &service.CartService{Store: st, API: api, Session: sessionService, Hub: hub}
	wishlistService := &service.WishlistService{Store: st, API: api, Session: sessionService, Hub: hub}
	sessionService.Cart = cartService
	sessionService.Wishlist = wishlistService

	router := httpapi.NewRouter("test", st, hub, logger)
	router.SessionService = sessionService
	router.CartService = cartService
	router.WishlistService = wishlistService
	router.ApplyRoutes()

	gateway := httptest.NewServer(router)
	t.Cleanup(gateway.Close)

	return gateway.URL, commerce
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp
}

// login authenticates the test customer through the gateway.
func login(t *testing.T, baseURL string) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, baseURL+"/v1/session/login", map[string]string{
		"username": customerUsername,
		"password": customerPassword,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// fakeCommerce is a stateful in-memory fake of the remote commerce platform.
type fakeCommerce struct {
	mu sync.Mutex

	products   map[string]shopapi.Product
	cartItems  []shopapi.CartItem
	nextItemID int
	wishlist   []shopapi.WishlistItem

	// failCart makes every cart route return 500, simulating an outage.
	failCart bool
}

func newFakeCommerce() *fakeCommerce {
	return &fakeCommerce{
		products: map[string]shopapi.Product{
			"train-01": {ID: "train-01", Name: "Wooden Train", Price: 2495},
			"bear-02":  {ID: "bear-02", Name: "Plush Bear", Price: 1895},
			"kite-03":  {ID: "kite-03", Name: "Box Kite", Price: 1250},
		},
		nextItemID: 100,
	}
}

func (f *fakeCommerce) setCartOutage(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCart = failing
}

// seedCartRows plants raw server cart rows, bypassing the merge logic, to
// simulate duplicate rows accumulated across devices.
func (f *fakeCommerce) seedCartRows(rows ...shopapi.CartItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartItems = append(f.cartItems, rows...)
}

func (f *fakeCommerce) cartSnapshot() []shopapi.CartItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]shopapi.CartItem(nil), f.cartItems...)
}

func (f *fakeCommerce) issueToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "cust-1",
		"username": customerUsername,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("e2e-secret"))
	return signed
}

func (f *fakeCommerce) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	switch {
	case r.Method == http.MethodPost && path == "/auth/customer/login":
		f.handleLogin(w, r)
	case r.Method == http.MethodPost && path == "/auth/refresh":
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": f.issueToken()})
	case strings.HasPrefix(path, "/cart"):
		f.handleCart(w, r)
	case strings.HasPrefix(path, "/api/wishlist"):
		f.handleWishlist(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/products/"):
		f.handleProduct(w, strings.TrimPrefix(path, "/products/"))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeCommerce) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&creds)

	if creds.Username != customerUsername || creds.Password != customerPassword {
		http.Error(w, `{"error":"invalid_credentials"}`, http.StatusUnauthorized)
		return
	}

	_ = json.NewEncoder(w).Encode(shopapi.TokenPair{
		AccessToken:  f.issueToken(),
		RefreshToken: "e2e-refresh-token",
	})
}

func (f *fakeCommerce) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return false
	}
	return true
}

func (f *fakeCommerce) handleCart(w http.ResponseWriter, r *http.Request) {
	if f.failCart {
		http.Error(w, `{"error":"unavailable"}`, http.StatusInternalServerError)
		return
	}
	if !f.requireAuth(w, r) {
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/cart/customer":
		_ = json.NewEncoder(w).Encode(shopapi.Cart{ID: "cart-1", Items: f.cartItems})

	case r.Method == http.MethodPost && r.URL.Path == "/cart/items":
		var req struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.appendRow(req.ProductID, req.Quantity)
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/cart/items/"):
		id := strings.TrimPrefix(r.URL.Path, "/cart/items/")
		quantity, _ := strconv.Atoi(r.URL.Query().Get("quantity"))
		for i := range f.cartItems {
			if f.cartItems[i].ID == id {
				f.cartItems[i].Quantity = quantity
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		http.NotFound(w, r)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/cart/items/"):
		id := strings.TrimPrefix(r.URL.Path, "/cart/items/")
		for i := range f.cartItems {
			if f.cartItems[i].ID == id {
				f.cartItems = append(f.cartItems[:i], f.cartItems[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.NotFound(w, r)

	case r.Method == http.MethodPost && r.URL.Path == "/cart/merge":
		var req struct {
			Items []shopapi.MergeItem `json:"items"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, item := range req.Items {
			f.mergeRow(item.ProductID, item.Quantity)
		}
		w.WriteHeader(http.StatusOK)

	default:
		http.NotFound(w, r)
	}
}

// appendRow always creates a new row, the way the real platform does when a
// product is added from a second device.
func (f *fakeCommerce) appendRow(productID string, quantity int) {
	product := f.products[productID]
	f.nextItemID++
	f.cartItems = append(f.cartItems, shopapi.CartItem{
		ID:          fmt.Sprintf("%d", f.nextItemID),
		ProductID:   productID,
		Quantity:    quantity,
		Price:       product.Price,
		ProductName: product.Name,
	})
}

// mergeRow sums into an existing row when one exists.
func (f *fakeCommerce) mergeRow(productID string, quantity int) {
	for i := range f.cartItems {
		if f.cartItems[i].ProductID == productID {
			f.cartItems[i].Quantity += quantity
			return
		}
	}
	f.appendRow(productID, quantity)
}

func (f *fakeCommerce) handleWishlist(w http.ResponseWriter, r *http.Request) {
	if !f.requireAuth(w, r) {
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/wishlist":
		items := f.wishlist
		if items == nil {
			items = []shopapi.WishlistItem{}
		}
		_ = json.NewEncoder(w).Encode(items)

	case r.Method == http.MethodPost && r.URL.Path == "/api/wishlist/toggle":
		var req struct {
			ProductID string `json:"productId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.toggleWishlist(req.ProductID)
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodPost && r.URL.Path == "/api/wishlist/merge":
		var req struct {
			ProductIDs []string `json:"productIds"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, id := range req.ProductIDs {
			if !f.wishlistContains(id) {
				f.toggleWishlist(id)
			}
		}
		w.WriteHeader(http.StatusOK)

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeCommerce) wishlistContains(productID string) bool {
	for _, item := range f.wishlist {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (f *fakeCommerce) toggleWishlist(productID string) {
	for i, item := range f.wishlist {
		if item.ProductID == productID {
			f.wishlist = append(f.wishlist[:i], f.wishlist[i+1:]...)
			return
		}
	}
	product := f.products[productID]
	f.wishlist = append(f.wishlist, shopapi.WishlistItem{
		ProductID: productID,
		Name:      product.Name,
		Price:     product.Price,
	})
}

func (f *fakeCommerce) handleProduct(w http.ResponseWriter, productID string) {
	product, ok := f.products[productID]
	if !ok {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(product)
}
