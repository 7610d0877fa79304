// Package repomanager wires repository implementations to a storage backend
// selected by DSN.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// RepositoryManager owns the storage backend and hands out repositories
// bound to it.
type RepositoryManager interface {
	Users() users.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}

// DSNInMemory selects the map-backed store instead of Postgres. Useful for
// local runs and tests; data does not survive a restart.
const DSNInMemory = "memory"

// New returns a manager for the given DSN: the in-memory one for
// DSNInMemory, a Postgres-backed one otherwise. Migrations are applied as
// part of construction.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == DSNInMemory {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
