package domain

// Provenance tags which store actually satisfied an operation. The UI shows
// the same success either way; the tag keeps the fallback decision
// inspectable instead of buried in control flow.
type Provenance string

const (
	// ProvenanceServer: the remote cart/wishlist holds the result.
	ProvenanceServer Provenance = "server"

	// ProvenanceLocal: guest mode, the local store holds the result.
	ProvenanceLocal Provenance = "local"

	// ProvenanceLocalFallback: the remote path failed and the operation was
	// absorbed into the local store instead.
	ProvenanceLocalFallback Provenance = "local-fallback"
)

// AddResult reports the outcome of a cart add. Err-free by contract: a cart
// add is never lost, only rerouted.
type AddResult struct {
	Provenance Provenance `json:"provenance"`
}

// ToggleResult reports the outcome of a wishlist toggle.
type ToggleResult struct {
	Provenance Provenance `json:"provenance"`

	// InWishlist is the membership state after the toggle. Only known for
	// local toggles; server toggles report it as unknown (nil).
	InWishlist *bool `json:"inWishlist,omitempty"`
}
