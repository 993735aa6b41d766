package store

import (
	"context"
	"fmt"
)

// CartLine is one cart entry as exposed to callers.
type CartLine struct {
	Product string
	Price   float64
}

// AddCartItem inserts one cart row for the user under the given category tag.
// The insert is unconditional: calling twice with identical arguments yields
// two rows. Price is not validated.
//
// The username is not checked against the users table - orphan cart rows are
// possible and the caller owns referential correctness.
func (s *Store) AddCartItem(ctx context.Context, username, product string, price float64, otype string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart (username, product, price, otype)
		VALUES (?, ?, ?, ?)
	`, username, product, price, otype)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

// CartItemExists reports whether any cart row matches the username and
// product, regardless of category.
func (s *Store) CartItemExists(ctx context.Context, username, product string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM cart WHERE username = ? AND product = ?
	`, username, product).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check cart item: %w", err)
	}
	return n > 0, nil
}

// RemoveCartCategory deletes every cart row matching the username and
// category tag. Deleting nothing is not an error.
func (s *Store) RemoveCartCategory(ctx context.Context, username, otype string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM cart WHERE username = ? AND otype = ?
	`, username, otype)
	if err != nil {
		return fmt.Errorf("remove cart category: %w", err)
	}
	return nil
}

// ClearCart deletes every cart row for the user, all categories.
func (s *Store) ClearCart(ctx context.Context, username string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM cart WHERE username = ?
	`, username)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// CartItems returns every cart row for the user, eagerly materialized, in
// insertion order (ORDER BY id). Returns an empty slice (not nil) when the
// cart is empty.
func (s *Store) CartItems(ctx context.Context, username string) ([]CartLine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product, price FROM cart
		WHERE username = ?
		ORDER BY id ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	var lines []CartLine
	for rows.Next() {
		var line CartLine
		if err := rows.Scan(&line.Product, &line.Price); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}

	if lines == nil {
		lines = []CartLine{}
	}
	return lines, nil
}

// CartItemsByCategory returns the user's cart rows for one category tag,
// each formatted as "<product> $<price>", in insertion order.
func (s *Store) CartItemsByCategory(ctx context.Context, username, otype string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product, price FROM cart
		WHERE username = ? AND otype = ?
		ORDER BY id ASC
	`, username, otype)
	if err != nil {
		return nil, fmt.Errorf("query cart category: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var line CartLine
		if err := rows.Scan(&line.Product, &line.Price); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		out = append(out, line.Display())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart category: %w", err)
	}

	if out == nil {
		out = []string{}
	}
	return out, nil
}
