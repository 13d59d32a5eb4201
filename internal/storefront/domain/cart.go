package domain

// GuestCartLine is one locally persisted cart line. At most one line exists
// per productId; repeated adds merge by summing quantity.
type GuestCartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartGroup is a display-ready cart row. The server may hold several
// line-items for the same product; the storefront reduces them to one group
// and remembers the constituent ids so a quantity edit can collapse the
// duplicates.
type CartGroup struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`

	// ItemIDs are the server-side line-item ids backing this group, in
	// server order. Empty for guest rows.
	ItemIDs []string `json:"itemIds,omitempty"`
}

// Subtotal is the group's price contribution.
func (g CartGroup) Subtotal() int64 {
	return g.UnitPrice * int64(g.Quantity)
}

// CartView is what the UI renders: grouped rows plus the derived total.
type CartView struct {
	Groups   []CartGroup `json:"groups"`
	Subtotal int64       `json:"subtotal"`

	// Source reports which store satisfied the listing.
	Source Provenance `json:"source"`
}
