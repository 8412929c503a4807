package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Lock contention is retryable,
// everything else is not.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}

// Conflict implements [ErrorClassificator]. SQLite reports the violated
// column in the message, e.g. "UNIQUE constraint failed: users.username".
func (c *SQLiteErrorClassifier) Conflict(err error) (ConflictField, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return "", false
	}

	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
		sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return "", false
	}

	return conflictFieldFromMessage(sqliteErr.Error()), true
}

func conflictFieldFromMessage(msg string) ConflictField {
	_, columns, found := strings.Cut(msg, "constraint failed:")
	if !found {
		return ConflictUnknown
	}

	switch strings.TrimSpace(columns) {
	case "users.username":
		return ConflictUsername
	case "users.email":
		return ConflictEmail
	default:
		return ConflictUnknown
	}
}
