// Package migrations holds the embedded account store schema and applies it
// with goose. Each supported driver has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned for a driver without migrations.
var ErrUnsupportedDriver = errors.New("no migrations for driver")

// Migrate brings the schema of db up to date. driver is the database/sql
// driver name db was opened with ("sqlite3" or "pgx"). Applying the same
// migrations twice is a no-op.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "sqlite3":
		return goose.DialectSQLite3, "sqlite", nil
	case "pgx":
		return goose.DialectPostgres, "postgres", nil
	default:
		return "", "", fmt.Errorf("%w %q", ErrUnsupportedDriver, driver)
	}
}
