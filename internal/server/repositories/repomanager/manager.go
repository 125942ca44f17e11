// Package repomanager vends the repositories of one storage backend and
// owns its connection lifecycle.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/whattowear/internal/server/config"
	"github.com/dmitrijs2005/whattowear/internal/server/repositories/items"
	"github.com/dmitrijs2005/whattowear/internal/server/repositories/users"
)

type RepositoryManager interface {
	// RunMigrations brings the schema (tables or indexes) up to date.
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Items() items.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// New opens the backend named by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageDriver {
	case DriverMemory, "":
		return NewMemoryRepositoryManager(), nil
	case DriverPostgres:
		return OpenPostgres(ctx, cfg.DatabaseDSN)
	case DriverMongo:
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
