package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a store backed by a temp-dir database.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustRegister registers a user or fails the test.
func mustRegister(t *testing.T, s *Store, username, email, password string) {
	t.Helper()
	if err := s.RegisterUser(context.Background(), username, email, password); err != nil {
		t.Fatalf("RegisterUser(%q, %q) failed: %v", username, email, err)
	}
}

// mustAddCartItem adds a cart item or fails the test.
func mustAddCartItem(t *testing.T, s *Store, username, product string, price float64, otype string) {
	t.Helper()
	if err := s.AddCartItem(context.Background(), username, product, price, otype); err != nil {
		t.Fatalf("AddCartItem(%q, %q) failed: %v", username, product, err)
	}
}

// testOrder returns an order record with representative field values.
func testOrder(username, packageName string, amount float64) OrderRecord {
	return OrderRecord{
		Username:  username,
		Fullname:  "Test User",
		Package:   packageName,
		Price:     49.5,
		Address:   "12 Main Road",
		ContactNo: "9876543210",
		Pincode:   560001,
		Date:      "2024-05-01",
		Time:      "10:30",
		Amount:    amount,
		OType:     "service",
	}
}
