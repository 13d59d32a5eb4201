package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/oakleaftoys/storefront/internal/storefront/service"
	"github.com/oakleaftoys/storefront/pkg/httpx"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

// SessionHandler serves the /v1/session endpoints.
type SessionHandler struct {
	SessionService *service.SessionService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin godoc
//
//	@Summary		Customer Login
//	@Description	Authenticates against the commerce platform, persists the session tokens
//	@Description	and merges any accumulated guest cart and wishlist into the customer account.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	service.Session
//	@Failure		400		{object}	map[string]string	"error, message"
//	@Failure		401		{object}	map[string]string	"error, message"
//	@Failure		502		{object}	map[string]string	"error, message"
//	@Router			/v1/session/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_credentials", "username and password are required")
		return
	}

	if err := h.SessionService.Login(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "username or password is incorrect")
			return
		}
		slogx.FromContext(ctx).Error("login failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "could not reach the commerce platform")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.SessionService.Current(ctx))
}

// HandleLogout godoc
//
//	@Summary		Customer Logout
//	@Description	Clears the persisted session tokens. Guest state is untouched.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	service.Session
//	@Failure		500	{object}	map[string]string	"error, message"
//	@Router			/v1/session/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.SessionService.Logout(ctx); err != nil {
		slogx.FromContext(ctx).Error("logout failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "could not clear session")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.SessionService.Current(ctx))
}

// HandleGet godoc
//
//	@Summary		Current Session
//	@Description	Returns the derived session mode, computed fresh from the persisted tokens.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	service.Session
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.SessionService.Current(r.Context()))
}
