package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/models"
)

// speciesRepository is the PostgreSQL-backed implementation of
// [SpeciesRepository].
type speciesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSpeciesRepository constructs a [SpeciesRepository] backed by the
// provided database connection and logger.
func NewSpeciesRepository(db *DB, logger *logger.Logger) SpeciesRepository {
	logger.Debug().Msg("creating species repository")
	return &speciesRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSpecies persists a new catalog record and returns it with
// server-assigned fields (SpeciesID, CreatedAt).
//
// Error handling:
//   - scientific-name unique violation → [ErrScientificNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *speciesRepository) CreateSpecies(ctx context.Context, species models.Species) (models.Species, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSpecies(species)
	if err != nil {
		return models.Species{}, fmt.Errorf("error building species insert: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&species.SpeciesID, &species.CreatedAt); err != nil {
		log.Err(err).Str("func", "*speciesRepository.CreateSpecies").Msg("error: inserting species")

		if mapped := mapConstraintError(err); mapped != err {
			return models.Species{}, mapped
		}
		return models.Species{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return species, nil
}

// GetSpeciesByID retrieves a single record by identifier.
// Returns [ErrNotFound] when absent.
func (r *speciesRepository) GetSpeciesByID(ctx context.Context, speciesID int64) (models.Species, error) {
	return r.selectOne(ctx, sq.Eq{"species_id": speciesID})
}

// FindByNameExact returns the record whose scientific name equals the query
// case-insensitively; ties resolve to the lowest identifier.
// Returns [ErrNotFound] when no record matches.
func (r *speciesRepository) FindByNameExact(ctx context.Context, name string) (models.Species, error) {
	return r.selectOne(ctx, sq.Expr("LOWER(scientific_name) = LOWER(?)", name))
}

// FindByNameSubstring returns the record whose scientific name contains the
// query case-insensitively; ties resolve to the lowest identifier.
// Returns [ErrNotFound] when no record matches.
func (r *speciesRepository) FindByNameSubstring(ctx context.Context, name string) (models.Species, error) {
	return r.selectOne(ctx, sq.ILike{"scientific_name": "%" + name + "%"})
}

func (r *speciesRepository) selectOne(ctx context.Context, pred any) (models.Species, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSpecies(pred, 1)
	if err != nil {
		return models.Species{}, fmt.Errorf("error building species select: %w", err)
	}

	var species models.Species
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanSpecies(row, &species); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Species{}, ErrNotFound
		}

		log.Err(err).Str("func", "*speciesRepository.selectOne").Msg("error: scanning species")
		return models.Species{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return species, nil
}

// SuggestNames returns up to limit (common, scientific) pairs whose selected
// name field contains the query case-insensitively, in store order.
func (r *speciesRepository) SuggestNames(ctx context.Context, query string, mode models.SuggestionMode, limit uint64) ([]models.Suggestion, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSuggestNames(query, mode, limit)
	if err != nil {
		return nil, fmt.Errorf("error building suggestions query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*speciesRepository.SuggestNames").Msg("error: querying suggestions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	suggestions := make([]models.Suggestion, 0, limit)
	for rows.Next() {
		var s models.Suggestion
		if err = rows.Scan(&s.Common, &s.Scientific); err != nil {
			log.Err(err).Str("func", "*speciesRepository.SuggestNames").Msg("error: scanning suggestion")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return suggestions, nil
}

// ListScientificNames returns id and scientific name of every catalog
// record, ordered by identifier. Used by the normalized resolution tiers.
func (r *speciesRepository) ListScientificNames(ctx context.Context) ([]SpeciesName, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listScientificNames)
	if err != nil {
		log.Err(err).Str("func", "*speciesRepository.ListScientificNames").Msg("error: querying names")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var names []SpeciesName
	for rows.Next() {
		var n SpeciesName
		if err = rows.Scan(&n.SpeciesID, &n.ScientificName); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		names = append(names, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return names, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanSpecies.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSpecies scans a full species row in speciesColumns order.
func scanSpecies(row rowScanner, s *models.Species) error {
	return row.Scan(
		&s.SpeciesID,
		&s.Kingdom, &s.Phylum, &s.Class, &s.Order, &s.Family, &s.Genus,
		&s.ScientificName, &s.PreviousScientificName, &s.Author, &s.CommonName,
		&s.Group, &s.AssessmentPeriod, &s.Category, &s.PossiblyExtinct,
		&s.Criteria, &s.Justification, &s.EndemicToBrazil, &s.OnNationalList,
		&s.States, &s.Region, &s.Biome, &s.HydrographicBasin,
		&s.FederalProtectedArea, &s.StateProtectedArea, &s.PrivateReserve,
		&s.Migratory, &s.PopulationTrend, &s.Threats, &s.Uses,
		&s.ConservationActions, &s.ActionPlan, &s.TreatyLists,
		&s.SubmitterID, &s.CreatedAt,
	)
}
