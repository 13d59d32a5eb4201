package store

import (
	"context"

	"github.com/oakleaftoys/storefront/internal/storefront/domain"
)

// Store is the root data access interface over the locally persisted
// storefront state. A concrete driver (sqlite) implements it. The local
// database is the single source of truth for guest state and tokens; no
// in-memory copy is authoritative.
type Store interface {
	Tokens() Tokens
	GuestCart() GuestCart
	GuestWishlist() GuestWishlist

	ApplyMigrations() error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database is still reachable.
	Ping(ctx context.Context) error
}

// Tokens is the persisted session token store. Writes are write-through;
// reads always reflect persisted state.
type Tokens interface {
	// GetAccessToken returns the stored access token, "" when absent.
	GetAccessToken(ctx context.Context) (string, error)

	// GetRefreshToken returns the stored refresh token, "" when absent.
	GetRefreshToken(ctx context.Context) (string, error)

	// SetAccessToken persists the access token. An empty value removes the
	// stored entry instead of writing an empty string.
	SetAccessToken(ctx context.Context, token string) error

	// SetRefreshToken persists the refresh token, same empty-value rule.
	SetRefreshToken(ctx context.Context, token string) error

	// Clear removes both tokens in one statement; a concurrent reader never
	// observes one token without the other.
	Clear(ctx context.Context) error
}

// GuestCart is the persisted anonymous cart: an ordered list of lines with
// at most one line per product.
type GuestCart interface {
	// Add merges into an existing line (summing quantities) or appends.
	Add(ctx context.Context, productID string, quantity int) error

	// Remove deletes the line entirely, regardless of quantity.
	Remove(ctx context.Context, productID string) error

	// List returns the lines in insertion order.
	List(ctx context.Context) ([]domain.GuestCartLine, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// Count is the sum of quantities, derived for badge display.
	Count(ctx context.Context) (int, error)
}

// GuestWishlist is the persisted anonymous wishlist: a set of product ids.
type GuestWishlist interface {
	// Toggle flips membership and reports the resulting state.
	Toggle(ctx context.Context, productID string) (inWishlist bool, err error)

	// Contains reports membership.
	Contains(ctx context.Context, productID string) (bool, error)

	// List returns the member ids in insertion order.
	List(ctx context.Context) ([]string, error)

	// Clear empties the set.
	Clear(ctx context.Context) error

	// Count is the set size.
	Count(ctx context.Context) (int, error)
}
