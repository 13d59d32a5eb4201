package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/oakleaftoys/storefront/internal/storefront/service"
	"github.com/oakleaftoys/storefront/internal/storefront/signal"
	"github.com/oakleaftoys/storefront/internal/storefront/store"
	"github.com/oakleaftoys/storefront/pkg/httpx"
	"github.com/oakleaftoys/storefront/pkg/slogx"

	_ "github.com/oakleaftoys/storefront/api/storefront" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	hub   *signal.Hub

	SessionService  *service.SessionService
	CartService     *service.CartService
	WishlistService *service.WishlistService
}

func NewRouter(buildVersion string, st store.Store, hub *signal.Hub, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		hub:          hub,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerCart()
	r.registerWishlist()
	r.registerEvents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Oakleaf Toys Storefront Gateway API
//	@version		0.1.0
//	@description	Localhost API for the storefront client gateway. Reconciles the shopper's
//	@description	cart and wishlist between the remote commerce platform and the locally
//	@description	persisted guest state, switching between them based on session mode.
//
//	@contact.name	Oakleaf Toys Engineering
//	@contact.url	https://github.com/oakleaftoys/storefront
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// POST /login carries credentials - strict rate limit
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/session/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCart() {
	h := &CartHandler{CartService: r.CartService}
	limited := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /v1/cart", limited(h.HandleList))
	r.Mux.Handle("GET /v1/cart/count", limited(h.HandleCount))
	r.Mux.Handle("POST /v1/cart/items", limited(h.HandleAdd))
	r.Mux.Handle("PUT /v1/cart/items/{productId}", limited(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/cart/items/{productId}", limited(h.HandleRemove))
}

func (r *Router) registerWishlist() {
	h := &WishlistHandler{WishlistService: r.WishlistService}
	limited := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /v1/wishlist", limited(h.HandleList))
	r.Mux.Handle("GET /v1/wishlist/count", limited(h.HandleCount))
	r.Mux.Handle("POST /v1/wishlist/toggle", limited(h.HandleToggle))
	r.Mux.Handle("GET /v1/wishlist/contains/{productId}", limited(h.HandleContains))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{Hub: r.hub}
	r.Mux.Handle("GET /v1/events", h)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store))
}
