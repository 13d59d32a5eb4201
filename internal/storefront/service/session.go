package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oakleaftoys/storefront/internal/storefront/domain"
	"github.com/oakleaftoys/storefront/internal/storefront/signal"
	"github.com/oakleaftoys/storefront/internal/storefront/store"
	"github.com/oakleaftoys/storefront/pkg/jwtx"
	"github.com/oakleaftoys/storefront/pkg/shopapi"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// SessionService owns the shopper's guest/authenticated state. Mode is
// derived from the persisted access token on every call, never cached, so a
// token expiring or being cleared by a failed refresh takes effect on the
// very next operation.
type SessionService struct {
	Store store.Store
	API   *shopapi.Client
	Hub   *signal.Hub

	// Cart and Wishlist perform the one-shot guest merge at login. Set by
	// the application after all services are constructed.
	Cart     *CartService
	Wishlist *WishlistService

	// Now is the clock used for expiry checks, overridable in tests.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Mode derives the current session mode from the persisted access token. A
// token within the expiry buffer counts as expired. An unreadable token store
// degrades to guest rather than failing.
func (s *SessionService) Mode(ctx context.Context) domain.SessionMode {
	token, err := s.Store.Tokens().GetAccessToken(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("token store read failed, treating session as guest", slog.Any("error", err))
		return domain.ModeGuest
	}
	if token == "" || !jwtx.IsLive(token, s.now()) {
		return domain.ModeGuest
	}
	return domain.ModeAuthenticated
}

// Session is the derived session state returned to the UI.
type Session struct {
	Mode     domain.SessionMode `json:"mode"`
	Username string             `json:"username,omitempty"`
}

// Current returns the derived session state, including the username from the
// token claims when authenticated.
func (s *SessionService) Current(ctx context.Context) Session {
	if s.Mode(ctx) != domain.ModeAuthenticated {
		return Session{Mode: domain.ModeGuest}
	}

	token, err := s.Store.Tokens().GetAccessToken(ctx)
	if err != nil {
		return Session{Mode: domain.ModeGuest}
	}

	claims, err := jwtx.Decode(token)
	if err != nil {
		return Session{Mode: domain.ModeAuthenticated}
	}
	return Session{Mode: domain.ModeAuthenticated, Username: claims.Username}
}

// Login authenticates against the commerce API, persists the minted tokens,
// then merges any accumulated guest cart and wishlist into the customer's
// server-side state. Guest stores are cleared only after their merge
// succeeds, so a failed merge leaves the local lines intact for retry.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	l := slogx.FromContext(ctx)

	pair, err := s.API.Login(ctx, username, password)
	if err != nil {
		if shopapi.IsAuthError(err) {
			return ErrInvalidCredentials
		}
		return err
	}

	tokens := s.Store.Tokens()
	if err := tokens.SetAccessToken(ctx, pair.AccessToken); err != nil {
		return err
	}
	if err := tokens.SetRefreshToken(ctx, pair.RefreshToken); err != nil {
		return err
	}

	l.Info("customer logged in", slog.String("username", username))

	// Merge failures do not fail the login: the shopper is authenticated
	// and their guest lines stay local until a later merge or manual add.
	if err := s.Cart.MergeIntoServer(ctx); err != nil {
		l.Warn("guest cart merge failed after login", slog.Any("error", err))
	}
	if err := s.Wishlist.MergeIntoServer(ctx); err != nil {
		l.Warn("guest wishlist merge failed after login", slog.Any("error", err))
	}

	s.Hub.Publish(signal.TopicSession)
	s.Hub.Publish(signal.TopicCart)
	s.Hub.Publish(signal.TopicWishlist)
	return nil
}

// Logout clears the persisted tokens. Guest state is untouched; the shopper
// resumes whatever local cart and wishlist they had before logging in.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.Store.Tokens().Clear(ctx); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("customer logged out")

	s.Hub.Publish(signal.TopicSession)
	s.Hub.Publish(signal.TopicCart)
	s.Hub.Publish(signal.TopicWishlist)
	return nil
}
