package store

import (
	"context"
	"fmt"
)

// OrderRecord is one finalized order as stored in the ledger.
// Records are immutable once written: the ledger exposes no update or delete.
//
// Date and Time are free-form strings and are not validated as calendar or
// clock values. Pincode is the only numeric address field.
type OrderRecord struct {
	Username  string
	Fullname  string
	Package   string
	Price     float64
	Address   string
	ContactNo string
	Pincode   int
	Date      string
	Time      string
	Amount    float64
	OType     string
}

// AppendOrder writes one immutable record to the ledger.
// No field is validated: negative prices and malformed date/time strings are
// accepted silently, and the username is not checked against the users table.
func (s *Store) AppendOrder(ctx context.Context, rec OrderRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orderplace
		(username, fullname, package, price, address, contactno, pincode, date, time, amount, otype)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.Username,
		rec.Fullname,
		rec.Package,
		rec.Price,
		rec.Address,
		rec.ContactNo,
		rec.Pincode,
		rec.Date,
		rec.Time,
		rec.Amount,
		rec.OType,
	)
	if err != nil {
		return fmt.Errorf("append order: %w", err)
	}
	return nil
}

// OrdersForUser returns every ledger record for the user as structured
// records, in insertion order (ORDER BY rowid). Returns an empty slice (not
// nil) when the user has no orders.
func (s *Store) OrdersForUser(ctx context.Context, username string) ([]OrderRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, fullname, package, price, address, contactno, pincode, date, time, amount, otype
		FROM orderplace
		WHERE username = ?
		ORDER BY rowid ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var recs []OrderRecord
	for rows.Next() {
		var rec OrderRecord
		err := rows.Scan(
			&rec.Username,
			&rec.Fullname,
			&rec.Package,
			&rec.Price,
			&rec.Address,
			&rec.ContactNo,
			&rec.Pincode,
			&rec.Date,
			&rec.Time,
			&rec.Amount,
			&rec.OType,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	if recs == nil {
		recs = []OrderRecord{}
	}
	return recs, nil
}

// OrderRows returns the user's ledger records in the legacy serialized form,
// one DisplayRow string per record. See DisplayRow for the field set.
func (s *Store) OrderRows(ctx context.Context, username string) ([]string, error) {
	recs, err := s.OrdersForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.DisplayRow()
	}
	return out, nil
}
