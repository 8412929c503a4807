package store

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository owns the users table. It is the only component that
// writes account rows.
type AccountRepository interface {
	// CreateAccount inserts account atomically and returns it with ID set.
	// A uniqueness violation yields *ConflictError.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindByUsername returns the account with exactly this username or
	// ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (models.Account, error)

	// FindByCredentials returns the account matching both username and
	// digest in a single lookup, or ErrAccountNotFound.
	FindByCredentials(ctx context.Context, username, passwordDigest string) (models.Account, error)
}

// ErrorClassificator interprets driver errors for one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// Conflict reports whether err is a uniqueness violation and, if so,
	// which column caused it.
	Conflict(err error) (ConflictField, bool)
}
