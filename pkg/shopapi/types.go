package shopapi

// TokenPair is the login endpoint response.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// CartItem is a single server-side cart row. The server may hold several rows
// for the same product; the storefront groups them for display.
type CartItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	ProductName string `json:"productName,omitempty"`
}

// Cart is the customer's server-side cart.
type Cart struct {
	ID    string     `json:"id,omitempty"`
	Items []CartItem `json:"items"`
}

// MergeItem is one guest cart line submitted to the merge endpoint.
type MergeItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Product is the public catalog representation, used to expand guest cart
// lines into display-ready rows.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// WishlistItem is a server-side wishlist entry.
type WishlistItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name,omitempty"`
	Price     int64  `json:"price,omitempty"`
}
