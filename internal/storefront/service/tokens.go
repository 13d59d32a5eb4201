package service

import (
	"context"

	"github.com/oakleaftoys/storefront/internal/storefront/store"
)

// StoreTokenSource adapts the persisted token store to the commerce client's
// token source. Every read and write goes straight through to the database so
// the client and the session service always observe the same tokens.
type StoreTokenSource struct {
	tokens store.Tokens
}

// NewTokenSource wraps the token store for use by the commerce API client.
func NewTokenSource(tokens store.Tokens) *StoreTokenSource {
	return &StoreTokenSource{tokens: tokens}
}

func (s *StoreTokenSource) AccessToken(ctx context.Context) (string, error) {
	return s.tokens.GetAccessToken(ctx)
}

func (s *StoreTokenSource) RefreshToken(ctx context.Context) (string, error) {
	return s.tokens.GetRefreshToken(ctx)
}

func (s *StoreTokenSource) StoreAccessToken(ctx context.Context, token string) error {
	return s.tokens.SetAccessToken(ctx, token)
}

func (s *StoreTokenSource) ClearAccessToken(ctx context.Context) error {
	return s.tokens.SetAccessToken(ctx, "")
}
