// Package migrations embeds the SQL schema of the registry and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	if _, err := provider.Down(ctx); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// Status returns the applied state of every known migration.
func Status(ctx context.Context, db *sql.DB) ([]*goose.MigrationStatus, error) {
	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migration status")
	}

	return statuses, nil
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration provider")
	}

	return provider, nil
}
