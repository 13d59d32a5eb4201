package domain

// WishlistItem is a wishlist entry as the UI sees it. Guest entries carry
// only the product id; authenticated listings are enriched by the server.
type WishlistItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name,omitempty"`
	Price     int64  `json:"price,omitempty"`
}

// SessionMode is the derived guest/authenticated state, computed fresh from
// the token store on every call. Never cached.
type SessionMode string

const (
	ModeGuest         SessionMode = "guest"
	ModeAuthenticated SessionMode = "authenticated"
)
