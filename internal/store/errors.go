package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ConstraintViolationError reports a unique-key conflict, such as registering
// a username or email that already exists.
//
// The database constraint is the sole source of truth for uniqueness: there
// is no pre-check, so callers must branch on this error rather than on a
// prior UserExists call.
type ConstraintViolationError struct {
	// Table is the relation whose constraint was violated.
	Table string

	// Err is the underlying driver error.
	Err error
}

// Error implements the error interface.
func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation on %s: %v", e.Table, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation returns true if the error is a unique-key conflict.
// Uses errors.As to handle wrapped errors.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolationError
	return errors.As(err, &cv)
}

// constraintError wraps a driver error as *ConstraintViolationError when it
// is a uniqueness conflict, and returns it unchanged otherwise.
func constraintError(table string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &ConstraintViolationError{Table: table, Err: err}
		}
	}
	return err
}
