package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oakleaftoys/storefront/internal/storefront/domain"
)

type guestCartRepo struct {
	db *sql.DB
}

// Add upserts a line, summing quantities on conflict. Insertion order is
// preserved by the autoincrement position column.
func (r *guestCartRepo) Add(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("guest cart: quantity must be at least 1, got %d", quantity)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guest_cart_lines (product_id, quantity)
		VALUES (?, ?)
		ON CONFLICT (product_id) DO UPDATE
		SET quantity = quantity + excluded.quantity`,
		productID, quantity,
	)
	return err
}

func (r *guestCartRepo) Remove(ctx context.Context, productID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM guest_cart_lines WHERE product_id = ?`, productID)
	return err
}

func (r *guestCartRepo) List(ctx context.Context) ([]domain.GuestCartLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, quantity FROM guest_cart_lines ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.GuestCartLine
	for rows.Next() {
		var line domain.GuestCartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *guestCartRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM guest_cart_lines`)
	return err
}

func (r *guestCartRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM guest_cart_lines`,
	).Scan(&count)
	return count, err
}
