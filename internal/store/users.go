package store

import (
	"context"
	"fmt"
)

// RegisterUser inserts a new user row.
//
// No existence check is performed first: the INSERT itself is the uniqueness
// check, and a username or email collision returns *ConstraintViolationError.
// This removes the check-then-insert race the source system had.
//
// The password is stored exactly as given. Hashing, if wanted, is the
// caller's responsibility.
func (s *Store) RegisterUser(ctx context.Context, username, email, password string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password)
		VALUES (?, ?, ?)
	`, username, email, password)
	if err != nil {
		if cvErr := constraintError("users", err); IsConstraintViolation(cvErr) {
			return cvErr
		}
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}

// UserExists reports whether any user matches the username OR the email.
// The disjunction is deliberate: an email collision on a different username
// also counts as "exists".
//
// Advisory only - a concurrent registration can change the answer before the
// caller acts on it. RegisterUser's constraint error is authoritative.
func (s *Store) UserExists(ctx context.Context, username, email string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE username = ? OR email = ?
	`, username, email).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return n > 0, nil
}

// Login reports whether a user row matches both fields exactly.
// The comparison is case-sensitive and byte-exact; no hashing or
// verification scheme is applied.
func (s *Store) Login(ctx context.Context, username, password string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE username = ? AND password = ?
	`, username, password).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}
	return n > 0, nil
}
