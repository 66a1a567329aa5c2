// Package migrations embeds the SQL schema for every supported database
// driver and applies it with goose.
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

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned by [Migrate] for a driver without an
// embedded migration set.
var ErrUnsupportedDriver = errors.New("unsupported migration driver")

var dialects = map[string]struct {
	dir     string
	dialect goose.Dialect
}{
	"postgres": {dir: "postgres", dialect: goose.DialectPostgres},
	"pgx":      {dir: "postgres", dialect: goose.DialectPostgres},
	"sqlite3":  {dir: "sqlite", dialect: goose.DialectSQLite3},
}

// Migrate applies all pending migrations for driver ("postgres" or
// "sqlite3") to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	fsys, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening embedded files: %w", err)
	}

	provider, err := goose.NewProvider(d.dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
