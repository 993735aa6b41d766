// Package store is the SQLite-backed persistence layer for the carestore
// ordering application.
//
// It owns three tables and the operations over them:
//   - users: registered credentials (username PK, email UNIQUE)
//   - cart: per-user cart entries partitioned by category tag (otype)
//   - orderplace: append-only ledger of finalized orders
//
// # Contracts
//
// Uniqueness is enforced by the database, not by pre-checks: RegisterUser
// issues a single INSERT and reports conflicts as *ConstraintViolationError.
// UserExists is advisory only and must not be treated as a reservation.
//
// Absence is never an error: lookups return false or empty slices when no
// rows match.
//
// Passwords are stored verbatim. Callers wanting hashed credentials must
// hash before calling; Login compares byte-exact.
//
// The schema upgrade path is destructive: a version mismatch on Open, or an
// explicit Reset, drops all three tables and recreates them empty.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout: wait for locks instead of failing immediately
//   - foreign_keys=OFF: the cart→users reference is advisory, orphan cart
//     rows are permitted and callers own referential correctness
package store
