// Package store implements the persistence layer: PostgreSQL repositories
// for users and species, and the in-process TTL cache shared by the
// enrichment services.
package store

import (
	"context"
	"time"

	"github.com/vheb/biomap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles account creation and lookup against the users table
// and its role-specialization tables.
type UserRepository interface {
	// CreateUser persists the base account and its role-specific payload
	// (if any) in a single transaction. Either both rows are created or
	// neither is.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves an account by its unique username,
	// including the role-specialization payload.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves an account by its identifier, including the
	// role-specialization payload.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile updates the mutable base fields and the
	// role-specialization payload in a single transaction.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
}

// SpeciesName is a lightweight projection used by the normalized resolution
// tiers, which scan every catalog entry.
type SpeciesName struct {
	SpeciesID      int64
	ScientificName string
}

// SpeciesRepository handles catalog record creation and the raw (SQL-side)
// search operations. Normalized matching lives in the service layer.
type SpeciesRepository interface {
	// CreateSpecies persists a new catalog record.
	CreateSpecies(ctx context.Context, species models.Species) (models.Species, error)

	// GetSpeciesByID retrieves a single record by identifier.
	GetSpeciesByID(ctx context.Context, speciesID int64) (models.Species, error)

	// SuggestNames returns up to limit (common, scientific) name pairs
	// whose selected name field contains the query, case-insensitively,
	// in store order.
	SuggestNames(ctx context.Context, query string, mode models.SuggestionMode, limit uint64) ([]models.Suggestion, error)

	// FindByNameExact returns the record whose scientific name equals the
	// query case-insensitively. Ties resolve to the lowest identifier.
	FindByNameExact(ctx context.Context, name string) (models.Species, error)

	// FindByNameSubstring returns the record whose scientific name
	// contains the query case-insensitively. Ties resolve to the lowest
	// identifier.
	FindByNameSubstring(ctx context.Context, name string) (models.Species, error)

	// ListScientificNames returns id and scientific name of every record,
	// ordered by identifier.
	ListScientificNames(ctx context.Context) ([]SpeciesName, error)
}

// Cache is the shared key-value store used by the enrichment services.
// Values are strings (URLs, artifact paths); entries expire after the TTL
// passed to Set. Concurrent writers for the same key are last-writer-wins.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
}
