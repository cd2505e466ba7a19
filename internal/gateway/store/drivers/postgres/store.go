// Package postgres implements the analytics store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmikalova/login-gateway/internal/gateway/store"
)

// PgxPool is the slice of pgxpool.Pool the store needs. pgxmock's pool
// interface satisfies it too, which is what the unit tests run against.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store holds the connection pool and implements store.Store.
type Store struct {
	pool   PgxPool
	dsn    string
	schema string
}

// NewStore connects a pool for the given DSN. The schema is placed at the
// head of search_path so unqualified table names resolve into it; it is
// created on ApplyMigrations if missing.
func NewStore(ctx context.Context, dsn, schema string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}
	if schema != "" {
		cfg.ConnConfig.RuntimeParams["search_path"] = schema + ", public"
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	return &Store{pool: pool, dsn: dsn, schema: schema}, nil
}

// DomainLogins returns the domain-login repository.
func (s *Store) DomainLogins() store.DomainLogins {
	return &DomainLoginRepo{pool: s.pool}
}

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
