package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oakleaftoys/storefront/internal/storefront/domain"
	"github.com/oakleaftoys/storefront/internal/storefront/signal"
	"github.com/oakleaftoys/storefront/internal/storefront/store"
	"github.com/oakleaftoys/storefront/pkg/shopapi"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

// WishlistService reconciles the shopper's wishlist across the server-side
// wishlist and the local guest store. Unlike the cart, a failed server toggle
// is surfaced to the caller instead of being absorbed locally: a wishlist
// membership the shopper believes saved but wasn't is worse than an error.
type WishlistService struct {
	Store   store.Store
	API     *shopapi.Client
	Session *SessionService
	Hub     *signal.Hub
}

// Toggle flips a product's wishlist membership. Guest toggles report the
// resulting state; server toggles report it as unknown since the endpoint
// does not echo it back.
func (s *WishlistService) Toggle(ctx context.Context, productID string) (domain.ToggleResult, error) {
	if s.Session.Mode(ctx) == domain.ModeGuest {
		in, err := s.Store.GuestWishlist().Toggle(ctx, productID)
		if err != nil {
			return domain.ToggleResult{}, err
		}
		s.Hub.Publish(signal.TopicWishlist)
		return domain.ToggleResult{Provenance: domain.ProvenanceLocal, InWishlist: &in}, nil
	}

	if err := s.API.ToggleWishlist(ctx, productID); err != nil {
		return domain.ToggleResult{}, fmt.Errorf("toggle wishlist: %w", err)
	}

	s.Hub.Publish(signal.TopicWishlist)
	return domain.ToggleResult{Provenance: domain.ProvenanceServer}, nil
}

// List returns the wishlist. Guest entries are enriched through the public
// catalog; a failed product lookup keeps the bare id in the listing rather
// than dropping the entry, since membership is the point of a wishlist.
func (s *WishlistService) List(ctx context.Context) ([]domain.WishlistItem, error) {
	if s.Session.Mode(ctx) == domain.ModeAuthenticated {
		items, err := s.API.Wishlist(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]domain.WishlistItem, 0, len(items))
		for _, item := range items {
			out = append(out, domain.WishlistItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
			})
		}
		return out, nil
	}

	ids, err := s.Store.GuestWishlist().List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("guest wishlist read failed, serving empty wishlist", slog.Any("error", err))
		ids = nil
	}

	out := make([]domain.WishlistItem, 0, len(ids))
	for _, id := range ids {
		product, err := s.API.Product(ctx, id)
		if err != nil {
			slogx.FromContext(ctx).Warn("product lookup failed, listing wishlist entry by id only",
				slog.String("product_id", id), slog.Any("error", err))
			out = append(out, domain.WishlistItem{ProductID: id})
			continue
		}
		out = append(out, domain.WishlistItem{ProductID: id, Name: product.Name, Price: product.Price})
	}
	return out, nil
}

// Contains reports whether the product is in the wishlist, used for the
// heart state on product pages.
func (s *WishlistService) Contains(ctx context.Context, productID string) (bool, error) {
	if s.Session.Mode(ctx) == domain.ModeGuest {
		return s.Store.GuestWishlist().Contains(ctx, productID)
	}

	items, err := s.API.Wishlist(ctx)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// Count is the badge count: the wishlist size. A failed server fetch degrades
// to the local count, mirroring the cart badge.
func (s *WishlistService) Count(ctx context.Context) (int, error) {
	if s.Session.Mode(ctx) == domain.ModeAuthenticated {
		items, err := s.API.Wishlist(ctx)
		if err == nil {
			return len(items), nil
		}
		slogx.FromContext(ctx).Warn("server wishlist count failed, serving local count",
			slog.Any("error", err))
	}

	count, err := s.Store.GuestWishlist().Count(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("guest wishlist count failed, serving zero", slog.Any("error", err))
		return 0, nil
	}
	return count, nil
}

// MergeIntoServer submits the accumulated guest wishlist ids to the server
// merge endpoint and clears the local store on success. A no-op when the
// guest wishlist is empty.
func (s *WishlistService) MergeIntoServer(ctx context.Context) error {
	ids, err := s.Store.GuestWishlist().List(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.API.MergeWishlist(ctx, ids); err != nil {
		return fmt.Errorf("merge guest wishlist: %w", err)
	}

	if err := s.Store.GuestWishlist().Clear(ctx); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("guest wishlist merged into server wishlist", slog.Int("items", len(ids)))
	return nil
}
