package sqlite

import (
	"context"
	"database/sql"

	"github.com/oakleaftoys/storefront/internal/storefront/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Local state database: one writer, short transactions.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tokens() store.Tokens               { return &tokensRepo{db: s.db} }
func (s *Store) GuestCart() store.GuestCart         { return &guestCartRepo{db: s.db} }
func (s *Store) GuestWishlist() store.GuestWishlist { return &guestWishlistRepo{db: s.db} }
