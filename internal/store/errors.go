package store

import (
	"errors"
)

// ErrAccountNotFound is returned by lookups that match no account. Credential
// lookups return it whether the username or the digest did not match.
var ErrAccountNotFound = errors.New("account not found")

// ConflictField names the unique column a rejected insert collided with.
type ConflictField string

const (
	ConflictUsername ConflictField = "username"
	ConflictEmail    ConflictField = "email"
	// ConflictUnknown is used when the driver does not say which constraint
	// was violated.
	ConflictUnknown ConflictField = "unknown"
)

// ConflictError is returned by [AccountRepository.CreateAccount] when the new
// account violates a uniqueness constraint. Nothing is written in that case.
type ConflictError struct {
	Field ConflictField
}

func (e *ConflictError) Error() string {
	switch e.Field {
	case ConflictUsername:
		return "username already exists"
	case ConflictEmail:
		return "email already exists"
	default:
		return "username or email already exists"
	}
}

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrAcquiringConnection is returned when no connection can be taken from
	// the pool.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when the query ran but reading or
	// converting its result row failed.
	ErrScanningRow = errors.New("failed to read account row")
)
