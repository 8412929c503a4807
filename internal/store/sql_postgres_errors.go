package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names created by the postgres migrations.
const (
	usernameUniqueConstraint = "users_username_key"
	emailUniqueConstraint    = "users_email_key"
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE codes carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports connection exceptions (class 08), transaction rollbacks
// (class 40) and 57P03 as [Retryable]. Everything else, including errors
// that did not come from the server, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// Conflict maps a unique_violation to the column behind the violated
// constraint.
func (c *PostgresErrorClassifier) Conflict(err error) (ConflictField, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	switch pgErr.ConstraintName {
	case usernameUniqueConstraint:
		return ConflictUsername, true
	case emailUniqueConstraint:
		return ConflictEmail, true
	default:
		return ConflictUnknown, true
	}
}
