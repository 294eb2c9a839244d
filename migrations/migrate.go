// Package migrations holds the embedded MongoDB index migrations of the
// blog API and applies them with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:embed *.json
var embedMigrations embed.FS

var (
	ErrNilClient       = errors.New("migration error: mongo client is nil")
	ErrEmptyDatabase   = errors.New("migration error: database name is empty")
	ErrMigrationSource = errors.New("migration error: cannot open embedded migrations")
)

// Migrate applies every pending migration to database. Running it against
// an up-to-date database is a no-op.
func Migrate(client *mongo.Client, database string) error {
	if client == nil {
		return ErrNilClient
	}
	if database == "" {
		return ErrEmptyDatabase
	}

	src, err := iofs.New(embedMigrations, ".")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationSource, err)
	}

	driver, err := mongodb.WithInstance(client, &mongodb.Config{DatabaseName: database})
	if err != nil {
		return fmt.Errorf("migration error creating mongodb driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "mongodb", driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
