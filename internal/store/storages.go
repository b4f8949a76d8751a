package store

import (
	"context"
	"fmt"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/migrations"
)

// Storages aggregates every persistence backend the services depend on.
type Storages struct {
	UserRepository    UserRepository
	SpeciesRepository SpeciesRepository
	Cache             Cache
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the repositories and the shared TTL cache.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		SpeciesRepository: NewSpeciesRepository(db, logger),
		Cache:             NewTTLCache(cfg.Image.CacheTTL),
	}, nil
}
