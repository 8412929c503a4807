package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// Storages groups the repositories built on one database connection.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the database selected by cfg.DB (the SQLite file is created if
//     it does not exist).
//  2. Runs pending schema migrations. An up-to-date schema is left unchanged.
//  3. Builds the repositories on the opened connection.
//
// The caller owns the result and must call Close.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
