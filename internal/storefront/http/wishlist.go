package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oakleaftoys/storefront/internal/storefront/service"
	"github.com/oakleaftoys/storefront/pkg/httpx"
	"github.com/oakleaftoys/storefront/pkg/shopapi"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

// WishlistHandler serves the /v1/wishlist endpoints.
type WishlistHandler struct {
	WishlistService *service.WishlistService
}

type wishlistToggleRequest struct {
	ProductID string `json:"productId"`
}

type wishlistContainsResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

// HandleList godoc
//
//	@Summary		Wishlist Listing
//	@Description	Returns the wishlist: server entries for authenticated shoppers, locally
//	@Description	stored ids enriched through the catalog for guests.
//	@Tags			Wishlist
//	@Produce		json
//	@Success		200	{array}		domain.WishlistItem
//	@Failure		502	{object}	map[string]string	"error, message"
//	@Router			/v1/wishlist [get].
func (h *WishlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.WishlistService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("wishlist listing failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "could not list wishlist")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}

// HandleToggle godoc
//
//	@Summary		Toggle Wishlist Membership
//	@Description	Flips a product's wishlist membership. Server failures are surfaced to the
//	@Description	caller rather than absorbed locally, unlike cart adds.
//	@Tags			Wishlist
//	@Accept			json
//	@Produce		json
//	@Param			body	body		wishlistToggleRequest	true	"Product"
//	@Success		200		{object}	domain.ToggleResult
//	@Failure		400		{object}	map[string]string	"error, message"
//	@Failure		502		{object}	map[string]string	"error, message"
//	@Router			/v1/wishlist/toggle [post].
func (h *WishlistHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wishlistToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON")
		return
	}
	if req.ProductID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_product_id", "productId is required")
		return
	}

	result, err := h.WishlistService.Toggle(ctx, req.ProductID)
	if err != nil {
		slogx.FromContext(ctx).Error("wishlist toggle failed", slog.Any("error", err))
		if shopapi.IsAuthError(err) {
			httpx.WriteError(w, http.StatusUnauthorized, "session_expired", "session could not be renewed")
			return
		}
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "could not update wishlist")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

// HandleCount godoc
//
//	@Summary		Wishlist Badge Count
//	@Description	Returns the wishlist size for badge display.
//	@Tags			Wishlist
//	@Produce		json
//	@Success		200	{object}	countResponse
//	@Failure		500	{object}	map[string]string	"error, message"
//	@Router			/v1/wishlist/count [get].
func (h *WishlistHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.WishlistService.Count(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("wishlist count failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "could not count wishlist")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, countResponse{Count: count})
}

// HandleContains godoc
//
//	@Summary		Wishlist Membership Check
//	@Description	Reports whether a product is in the wishlist, for product page state.
//	@Tags			Wishlist
//	@Produce		json
//	@Param			productId	path		string	true	"Product id"
//	@Success		200			{object}	wishlistContainsResponse
//	@Failure		502			{object}	map[string]string	"error, message"
//	@Router			/v1/wishlist/contains/{productId} [get].
func (h *WishlistHandler) HandleContains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := r.PathValue("productId")

	contains, err := h.WishlistService.Contains(ctx, productID)
	if err != nil {
		slogx.FromContext(ctx).Error("wishlist membership check failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "could not check wishlist")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wishlistContainsResponse{ProductID: productID, InWishlist: contains})
}
