package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oakleaftoys/storefront/internal/storefront/service"
	"github.com/oakleaftoys/storefront/pkg/httpx"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

// CartHandler serves the /v1/cart endpoints.
type CartHandler struct {
	CartService *service.CartService
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type countResponse struct {
	Count int `json:"count"`
}

// HandleList godoc
//
//	@Summary		Cart Listing
//	@Description	Returns the display-ready cart: server rows grouped per product for
//	@Description	authenticated shoppers, locally stored lines expanded through the catalog
//	@Description	for guests. The source field reports which store satisfied the listing.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	domain.CartView
//	@Failure		500	{object}	map[string]string	"error, message"
//	@Router			/v1/cart [get].
func (h *CartHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.CartService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("cart listing failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "could not list cart")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleCount godoc
//
//	@Summary		Cart Badge Count
//	@Description	Returns the sum of cart quantities for badge display.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	countResponse
//	@Failure		500	{object}	map[string]string	"error, message"
//	@Router			/v1/cart/count [get].
func (h *CartHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.CartService.Count(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("cart count failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "could not count cart")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, countResponse{Count: count})
}

// HandleAdd godoc
//
//	@Summary		Add To Cart
//	@Description	Adds a product to the cart. Never fails for want of the server: a failed
//	@Description	server add is absorbed into the local store and reported via provenance.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		cartItemRequest	true	"Product and quantity"
//	@Success		200		{object}	domain.AddResult
//	@Failure		400		{object}	map[string]string	"error, message"
//	@Failure		500		{object}	map[string]string	"error, message"
//	@Router			/v1/cart/items [post].
func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON")
		return
	}
	if req.ProductID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_product_id", "productId is required")
		return
	}

	result, err := h.CartService.Add(ctx, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
			return
		}
		slogx.FromContext(ctx).Error("cart add failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "could not add to cart")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

// HandleUpdate godoc
//
//	@Summary		Set Cart Quantity
//	@Description	Sets a product's cart quantity, collapsing duplicate server rows into one.
//	@Description	A quantity of zero or less removes the product.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string			true	"Product id"
//	@Param			body		body		cartItemRequest	true	"New quantity (productId in body is ignored)"
//	@Success		204			"updated"
//	@Failure		400			{object}	map[string]string	"error, message"
//	@Failure		404			{object}	map[string]string	"error, message"
//	@Failure		502			{object}	map[string]string	"error, message"
//	@Router			/v1/cart/items/{productId} [put].
func (h *CartHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := r.PathValue("productId")

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON")
		return
	}

	if err := h.CartService.UpdateQuantity(ctx, productID, req.Quantity); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "item_not_found", "product is not in the cart")
			return
		}
		slogx.FromContext(ctx).Error("cart update failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "could not update cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove godoc
//
//	@Summary		Remove From Cart
//	@Description	Removes a product from the cart entirely, including duplicate server rows.
//	@Tags			Cart
//	@Produce		json
//	@Param			productId	path	string	true	"Product id"
//	@Success		204			"removed"
//	@Failure		404			{object}	map[string]string	"error, message"
//	@Failure		502			{object}	map[string]string	"error, message"
//	@Router			/v1/cart/items/{productId} [delete].
func (h *CartHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := r.PathValue("productId")

	if err := h.CartService.Remove(ctx, productID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "item_not_found", "product is not in the cart")
			return
		}
		slogx.FromContext(ctx).Error("cart remove failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "could not remove from cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
