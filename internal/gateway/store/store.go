// Package store defines the data access interface for login analytics.
// Concrete drivers live under drivers/.
package store

import (
	"context"
	"errors"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. The gateway's only persistent
// state is login analytics; auth flows must never depend on it.
type Store interface {
	DomainLogins() DomainLogins

	// ApplyMigrations brings the schema up to date using the embedded
	// migration files.
	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying pool.
	Close() error
}

// DomainLogins tracks which families each user has signed in on.
type DomainLogins interface {
	// Upsert records a login for (userID, family): inserts on first sight,
	// otherwise bumps last_login_at and the counter. Idempotent in shape,
	// monotonic in count.
	Upsert(ctx context.Context, userID string, family domain.Family) error

	// ListByUser returns the user's per-family login history, most recent
	// first.
	ListByUser(ctx context.Context, userID string) ([]domain.DomainLogin, error)
}
