package sqlite

import (
	"context"
	"database/sql"
)

type guestWishlistRepo struct {
	db *sql.DB
}

// Toggle flips membership inside one transaction and reports the resulting
// state. Toggling twice always returns the set to where it started.
func (r *guestWishlistRepo) Toggle(ctx context.Context, productID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM guest_wishlist_items WHERE product_id = ?)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	if exists {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM guest_wishlist_items WHERE product_id = ?`, productID)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO guest_wishlist_items (product_id) VALUES (?)`, productID)
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return !exists, nil
}

func (r *guestWishlistRepo) Contains(ctx context.Context, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM guest_wishlist_items WHERE product_id = ?)`,
		productID,
	).Scan(&exists)
	return exists, err
}

func (r *guestWishlistRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM guest_wishlist_items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *guestWishlistRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM guest_wishlist_items`)
	return err
}

func (r *guestWishlistRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM guest_wishlist_items`,
	).Scan(&count)
	return count, err
}
