package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oakleaftoys/storefront/internal/storefront/domain"
	"github.com/oakleaftoys/storefront/internal/storefront/signal"
	"github.com/oakleaftoys/storefront/internal/storefront/store"
	"github.com/oakleaftoys/storefront/pkg/shopapi"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

var (
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrItemNotFound    = errors.New("item_not_found")
)

// CartService reconciles the shopper's cart across the server-side cart and
// the local guest store. Guests work purely locally; authenticated shoppers
// work against the server with the local store absorbing failed adds, so an
// add never reports failure to the UI.
type CartService struct {
	Store   store.Store
	API     *shopapi.Client
	Session *SessionService
	Hub     *signal.Hub
}

// Add puts a product in the cart. Guest adds go to the local store; server
// adds that fail for any reason are absorbed into the local store instead of
// surfacing an error. The returned provenance reports which store took it.
func (s *CartService) Add(ctx context.Context, productID string, quantity int) (domain.AddResult, error) {
	if quantity < 1 {
		return domain.AddResult{}, ErrInvalidQuantity
	}

	if s.Session.Mode(ctx) == domain.ModeGuest {
		if err := s.Store.GuestCart().Add(ctx, productID, quantity); err != nil {
			return domain.AddResult{}, err
		}
		s.Hub.Publish(signal.TopicCart)
		return domain.AddResult{Provenance: domain.ProvenanceLocal}, nil
	}

	if err := s.API.AddCartItem(ctx, productID, quantity); err != nil {
		slogx.FromContext(ctx).Warn("server cart add failed, falling back to local store",
			slog.String("product_id", productID), slog.Any("error", err))

		if err := s.Store.GuestCart().Add(ctx, productID, quantity); err != nil {
			return domain.AddResult{}, err
		}
		s.Hub.Publish(signal.TopicCart)
		return domain.AddResult{Provenance: domain.ProvenanceLocalFallback}, nil
	}

	s.Hub.Publish(signal.TopicCart)
	return domain.AddResult{Provenance: domain.ProvenanceServer}, nil
}

// List returns the display-ready cart. Authenticated listings come from the
// server with duplicate product rows reduced to one group each; if the server
// is unreachable the local store serves the listing instead. Guest lines are
// expanded through the public catalog, dropping any line whose product lookup
// fails rather than failing the whole listing.
func (s *CartService) List(ctx context.Context) (*domain.CartView, error) {
	if s.Session.Mode(ctx) == domain.ModeAuthenticated {
		cart, err := s.API.CustomerCart(ctx)
		if err == nil {
			view := groupServerCart(cart)
			view.Source = domain.ProvenanceServer
			return view, nil
		}

		slogx.FromContext(ctx).Warn("server cart listing failed, serving local store",
			slog.Any("error", err))

		view, lerr := s.listGuest(ctx)
		if lerr != nil {
			return nil, lerr
		}
		view.Source = domain.ProvenanceLocalFallback
		return view, nil
	}

	view, err := s.listGuest(ctx)
	if err != nil {
		return nil, err
	}
	view.Source = domain.ProvenanceLocal
	return view, nil
}

// listGuest expands the local lines into display rows via the public catalog.
// A store read failure degrades to an empty cart rather than an error: guest
// reads are fail-soft on the UI path.
func (s *CartService) listGuest(ctx context.Context) (*domain.CartView, error) {
	lines, err := s.Store.GuestCart().List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("guest cart read failed, serving empty cart", slog.Any("error", err))
		lines = nil
	}

	view := &domain.CartView{Groups: []domain.CartGroup{}}
	for _, line := range lines {
		product, err := s.API.Product(ctx, line.ProductID)
		if err != nil {
			slogx.FromContext(ctx).Warn("product lookup failed, dropping cart line from view",
				slog.String("product_id", line.ProductID), slog.Any("error", err))
			continue
		}

		view.Groups = append(view.Groups, domain.CartGroup{
			ProductID: line.ProductID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}

	for _, g := range view.Groups {
		view.Subtotal += g.Subtotal()
	}
	return view, nil
}

// groupServerCart reduces the server's line-items to one group per product,
// in first-seen order, remembering the constituent item ids so quantity edits
// can collapse duplicates.
func groupServerCart(cart *shopapi.Cart) *domain.CartView {
	view := &domain.CartView{Groups: []domain.CartGroup{}}

	index := make(map[string]int)
	for _, item := range cart.Items {
		i, ok := index[item.ProductID]
		if !ok {
			index[item.ProductID] = len(view.Groups)
			view.Groups = append(view.Groups, domain.CartGroup{
				ProductID: item.ProductID,
				Name:      item.ProductName,
				UnitPrice: item.Price,
				Quantity:  item.Quantity,
				ItemIDs:   []string{item.ID},
			})
			continue
		}

		view.Groups[i].Quantity += item.Quantity
		view.Groups[i].ItemIDs = append(view.Groups[i].ItemIDs, item.ID)
	}

	for _, g := range view.Groups {
		view.Subtotal += g.Subtotal()
	}
	return view
}

// UpdateQuantity sets a product's cart quantity; zero or less removes the
// line. When the server holds several line-items for the product, the first
// takes the new quantity and the rest are deleted, collapsing the duplicates
// into one row.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, productID)
	}

	if s.Session.Mode(ctx) == domain.ModeGuest {
		cart := s.Store.GuestCart()
		if err := cart.Remove(ctx, productID); err != nil {
			return err
		}
		if err := cart.Add(ctx, productID, quantity); err != nil {
			return err
		}
		s.Hub.Publish(signal.TopicCart)
		return nil
	}

	itemIDs, err := s.serverItemIDs(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.API.UpdateCartItem(ctx, itemIDs[0], quantity); err != nil {
		return fmt.Errorf("update cart item %s: %w", itemIDs[0], err)
	}
	for _, id := range itemIDs[1:] {
		if err := s.API.DeleteCartItem(ctx, id); err != nil {
			return fmt.Errorf("collapse duplicate cart item %s: %w", id, err)
		}
	}

	s.Hub.Publish(signal.TopicCart)
	return nil
}

// Remove deletes a product from the cart entirely, including every duplicate
// server row.
func (s *CartService) Remove(ctx context.Context, productID string) error {
	if s.Session.Mode(ctx) == domain.ModeGuest {
		if err := s.Store.GuestCart().Remove(ctx, productID); err != nil {
			return err
		}
		s.Hub.Publish(signal.TopicCart)
		return nil
	}

	itemIDs, err := s.serverItemIDs(ctx, productID)
	if err != nil {
		return err
	}
	for _, id := range itemIDs {
		if err := s.API.DeleteCartItem(ctx, id); err != nil {
			return fmt.Errorf("delete cart item %s: %w", id, err)
		}
	}

	s.Hub.Publish(signal.TopicCart)
	return nil
}

// serverItemIDs returns the server line-item ids holding the product, in
// server order.
func (s *CartService) serverItemIDs(ctx context.Context, productID string) ([]string, error) {
	cart, err := s.API.CustomerCart(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, item := range cart.Items {
		if item.ProductID == productID {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrItemNotFound
	}
	return ids, nil
}

// Count is the badge count: the sum of quantities. A failed server fetch
// degrades to the local count rather than erroring, since the badge is
// cosmetic.
func (s *CartService) Count(ctx context.Context) (int, error) {
	if s.Session.Mode(ctx) == domain.ModeAuthenticated {
		cart, err := s.API.CustomerCart(ctx)
		if err == nil {
			total := 0
			for _, item := range cart.Items {
				total += item.Quantity
			}
			return total, nil
		}
		slogx.FromContext(ctx).Warn("server cart count failed, serving local count",
			slog.Any("error", err))
	}

	count, err := s.Store.GuestCart().Count(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("guest cart count failed, serving zero", slog.Any("error", err))
		return 0, nil
	}
	return count, nil
}

// MergeIntoServer submits the accumulated guest lines to the server merge
// endpoint and clears the local store on success. A no-op when the guest
// cart is empty.
func (s *CartService) MergeIntoServer(ctx context.Context) error {
	lines, err := s.Store.GuestCart().List(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	items := make([]shopapi.MergeItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, shopapi.MergeItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	if err := s.API.MergeCart(ctx, items); err != nil {
		return fmt.Errorf("merge guest cart: %w", err)
	}

	if err := s.Store.GuestCart().Clear(ctx); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("guest cart merged into server cart", slog.Int("lines", len(lines)))
	return nil
}
