package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/dmikalova/login-gateway/internal/gateway/store/drivers/postgres/migrations"
)

// ApplyMigrations creates the configured schema if needed and applies any
// pending migrations from the embedded files. The migrations table lives in
// the same schema, so the schema must exist before migrate connects.
func (s *Store) ApplyMigrations() error {
	if s.schema != "" {
		q := fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, s.schema)
		if _, err := s.pool.Exec(context.Background(), q); err != nil {
			return fmt.Errorf("postgres: create schema: %w", err)
		}
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return fmt.Errorf("postgres: load migrations: %w", err)
	}

	instance, err := migrate.NewWithSourceInstance("iofs", src, s.migrateURL())
	if err != nil {
		return fmt.Errorf("postgres: init migrate: %w", err)
	}
	defer instance.Close()

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: apply migrations: %w", err)
	}
	return nil
}

// migrateURL rewrites the DSN for golang-migrate's pgx/v5 driver and pins
// search_path so the migration history lands in the analytics schema.
func (s *Store) migrateURL() string {
	url := s.dsn
	url = strings.Replace(url, "postgresql://", "pgx5://", 1)
	url = strings.Replace(url, "postgres://", "pgx5://", 1)
	if s.schema != "" {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "search_path=" + s.schema
	}
	return url
}
