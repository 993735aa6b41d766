package store

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterUser_ThenLogin(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "pw1")

	ok, err := s.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if !ok {
		t.Error("Login() = false for freshly registered credentials")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "pw1")

	ok, err := s.Login(ctx, "alice", "wrong")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if ok {
		t.Error("Login() = true for wrong password")
	}
}

func TestLogin_CaseSensitivePassword(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "Secret")

	ok, err := s.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if ok {
		t.Error("Login() = true for password differing only in case")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	s := createTestStore(t)

	ok, err := s.Login(context.Background(), "nobody", "pw")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if ok {
		t.Error("Login() = true for unknown user")
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "pw1")

	err := s.RegisterUser(ctx, "alice", "b@y.com", "pw2")
	if err == nil {
		t.Fatal("expected constraint violation for duplicate username, got nil")
	}
	if !IsConstraintViolation(err) {
		t.Errorf("expected ConstraintViolationError, got %v", err)
	}

	var cv *ConstraintViolationError
	if errors.As(err, &cv) && cv.Table != "users" {
		t.Errorf("ConstraintViolationError.Table = %q, want %q", cv.Table, "users")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "pw1")

	// Different username, same email: still a conflict
	err := s.RegisterUser(ctx, "bob", "a@x.com", "pw2")
	if err == nil {
		t.Fatal("expected constraint violation for duplicate email, got nil")
	}
	if !IsConstraintViolation(err) {
		t.Errorf("expected ConstraintViolationError, got %v", err)
	}
}

func TestRegisterUser_FailedRegistrationLeavesNoRow(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "pw1")
	if err := s.RegisterUser(ctx, "alice", "b@y.com", "pw2"); err == nil {
		t.Fatal("expected constraint violation, got nil")
	}

	// The original credentials still win
	ok, err := s.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if !ok {
		t.Error("original registration was disturbed by the failed one")
	}
	ok, err = s.Login(ctx, "alice", "pw2")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if ok {
		t.Error("failed registration's password must not log in")
	}
}

func TestUserExists_Disjunction(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "alice", "a@x.com", "pw1")

	tests := []struct {
		name     string
		username string
		email    string
		want     bool
	}{
		{"both match", "alice", "a@x.com", true},
		{"username only", "alice", "other@x.com", true},
		{"email only", "other", "a@x.com", true},
		{"neither", "other", "other@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.UserExists(ctx, tt.username, tt.email)
			if err != nil {
				t.Fatalf("UserExists() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("UserExists(%q, %q) = %v, want %v", tt.username, tt.email, got, tt.want)
			}
		})
	}
}

func TestUserExists_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	exists, err := s.UserExists(context.Background(), "alice", "a@x.com")
	if err != nil {
		t.Fatalf("UserExists() failed: %v", err)
	}
	if exists {
		t.Error("UserExists() = true on empty store")
	}
}

func TestRegisterUser_PasswordStoredVerbatim(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Whatever credential value is given is what gets stored
	const password = "  plain text, spaces and $ymbols kept  "
	mustRegister(t, s, "alice", "a@x.com", password)

	var stored string
	err := s.db.QueryRow("SELECT password FROM users WHERE username = ?", "alice").Scan(&stored)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if stored != password {
		t.Errorf("stored password = %q, want it verbatim", stored)
	}

	ok, err := s.Login(ctx, "alice", password)
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if !ok {
		t.Error("Login() = false for verbatim password")
	}
}
