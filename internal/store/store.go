package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (users, cart, orderplace)
//
// A stored version that differs from currentSchemaVersion triggers a full
// reset: the upgrade path is destructive and drops all data. See Reset.
const currentSchemaVersion = 1

// Options configures a Store connection.
type Options struct {
	// BusyTimeout is how long SQLite waits for a lock before failing.
	BusyTimeout time.Duration
}

// DefaultOptions returns the options Open uses.
func DefaultOptions() Options {
	return Options{BusyTimeout: 5 * time.Second}
}

// Store is the persistence layer for the ordering application: registered
// users, per-user cart entries, and the append-only order ledger.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - busy timeout for lock contention
//   - foreign key enforcement OFF: the cart→users reference is advisory
//
// This function is idempotent - safe to call on every connection open.
// If the stored schema version differs from the current one, the upgrade
// drops all three tables and recreates them empty. That path loses data.
func Open(path string) (*Store, error) {
	return OpenWith(path, DefaultOptions())
}

// OpenWith is Open with explicit options.
func OpenWith(path string, opts Options) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	// This also keeps every operation on one shared handle with guaranteed
	// release instead of the open-per-call churn the source system had.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, opts); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Reset drops all three tables and recreates them empty.
//
// This is the destructive upgrade path made explicit: every user, cart entry
// and order is lost. It exists for schema-version mismatches and operator
// resets, never as part of normal operation.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range dropStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	if err := applySchema(s.db); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

var dropStatements = []string{
	"DROP TABLE IF EXISTS users",
	"DROP TABLE IF EXISTS cart",
	"DROP TABLE IF EXISTS orderplace",
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB, opts Options) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds()),
		// The cart table declares a reference to users, but callers own
		// referential correctness: orphan rows are allowed.
		"PRAGMA foreign_keys = OFF",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and stamps the version.
// A version mismatch on an existing database triggers the destructive
// drop-and-recreate upgrade.
func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version != 0 && version != currentSchemaVersion {
		// Destructive upgrade: drop everything and start over.
		for _, stmt := range dropStatements {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("upgrade from version %d: %w", version, err)
			}
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
