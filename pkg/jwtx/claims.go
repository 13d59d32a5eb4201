// Package jwtx inspects bearer tokens on the client side. The storefront
// never verifies signatures (that is the API's job); it only needs to decode
// the claims payload and decide whether a token is still worth sending.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpirySkew is subtracted from the exp claim when judging liveness. It
// absorbs request latency so a token is not used for the outbound leg of a
// request just as it crosses its expiry boundary.
const ExpirySkew = 30 * time.Second

var ErrMalformed = errors.New("jwtx: malformed token")

// Claims are the access-token claims the storefront cares about. Unknown
// fields are ignored so the API can grow its payload without breaking us.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the subject's role identifier ("customer", "admin").
	Role string `json:"role,omitempty"`

	// Username for the authenticated customer.
	Username string `json:"username,omitempty"`
}

// Decode splits a compact serialized token, base64url-decodes the payload
// segment and parses it as JSON. It never verifies the signature and never
// panics: any malformation yields ErrMalformed.
func Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformed
	}
	return claims, nil
}

// LiveAt reports whether the claims are usable at the given instant. A
// missing exp claim counts as dead: we refuse to treat an unbounded token as
// a session.
func (c *Claims) LiveAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.Before(c.ExpiresAt.Add(-ExpirySkew))
}

// IsLive is the one predicate every reconciliation decision hangs off:
// authenticated mode iff the stored token decodes and has not crossed the
// skew-buffered expiry. Empty and malformed tokens are simply "not live".
func IsLive(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims, err := Decode(token)
	if err != nil {
		return false
	}
	return claims.LiveAt(now)
}
