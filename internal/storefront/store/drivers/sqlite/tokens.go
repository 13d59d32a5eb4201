package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

const (
	tokenNameAccess  = "access_token"
	tokenNameRefresh = "refresh_token"
)

type tokensRepo struct {
	db *sql.DB
}

func (r *tokensRepo) GetAccessToken(ctx context.Context) (string, error) {
	return r.get(ctx, tokenNameAccess)
}

func (r *tokensRepo) GetRefreshToken(ctx context.Context) (string, error) {
	return r.get(ctx, tokenNameRefresh)
}

func (r *tokensRepo) SetAccessToken(ctx context.Context, token string) error {
	return r.set(ctx, tokenNameAccess, token)
}

func (r *tokensRepo) SetRefreshToken(ctx context.Context, token string) error {
	return r.set(ctx, tokenNameRefresh, token)
}

// Clear removes both tokens in a single statement so no reader observes a
// half-cleared session.
func (r *tokensRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE name IN (?, ?)`,
		tokenNameAccess, tokenNameRefresh,
	)
	return err
}

func (r *tokensRepo) get(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session_tokens WHERE name = ?`, name,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// set writes through to the database. A falsy token removes the row: an
// empty persisted value would falsely read as "logged in" elsewhere.
func (r *tokensRepo) set(ctx context.Context, name, token string) error {
	if token == "" {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM session_tokens WHERE name = ?`, name)
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_tokens (name, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT (name) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`,
		name, token,
	)
	return err
}
