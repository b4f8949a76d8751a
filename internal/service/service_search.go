package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vheb/biomap/internal/geo"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/models"
)

const (
	// minSuggestQueryLen is the minimum query length (in runes) before
	// autocomplete touches the store at all.
	minSuggestQueryLen = 2

	// maxSuggestions caps the autocomplete response size.
	maxSuggestions = 10

	// suggestFetchLimit is how many rows are fetched before in-memory
	// deduplication trims the result to maxSuggestions.
	suggestFetchLimit = 2 * maxSuggestions
)

// searchService is the concrete implementation of [SearchService]: the
// accent/case-insensitive matching engine over species names.
type searchService struct {
	speciesRepository store.SpeciesRepository
	logger            *logger.Logger
}

// NewSearchService constructs a [SearchService] over the given repository.
func NewSearchService(speciesRepository store.SpeciesRepository, logger *logger.Logger) SearchService {
	return &searchService{
		speciesRepository: speciesRepository,
		logger:            logger,
	}
}

// Suggest implements [SearchService]. Queries shorter than two runes
// short-circuit to an empty slice with no I/O. Results preserve store order,
// carry no relevance ranking, and are deduplicated before the cap is
// applied.
func (s *searchService) Suggest(ctx context.Context, query string, mode models.SuggestionMode) ([]models.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestQueryLen {
		return []models.Suggestion{}, nil
	}

	if !mode.Valid() {
		mode = models.SuggestByCommonName
	}

	rows, err := s.speciesRepository.SuggestNames(ctx, query, mode, suggestFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("suggestion lookup failed: %w", err)
	}

	seen := make(map[models.Suggestion]struct{}, len(rows))
	suggestions := make([]models.Suggestion, 0, maxSuggestions)
	for _, row := range rows {
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}

		suggestions = append(suggestions, row)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions, nil
}

// Resolve implements [SearchService]. Four tiers are tried in order of
// preference, first match wins:
//
//  1. exact case-insensitive match on the trimmed raw string;
//  2. case-insensitive substring match on the trimmed raw string;
//  3. diacritic-stripped lowercase exact equality over every record;
//  4. the same normalization with substring containment.
//
// Whenever several records match a tier, the lowest species ID wins: the SQL
// tiers order by id, and the scan tiers walk the id-ordered name list, so
// resolution is deterministic.
//
// No surviving candidate yields [store.ErrNotFound]; callers must present
// that as a user-visible empty result, not an error.
func (s *searchService) Resolve(ctx context.Context, name string) (models.Species, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Species{}, store.ErrNotFound
	}

	// Tier 1: exact, case-insensitive.
	species, err := s.speciesRepository.FindByNameExact(ctx, name)
	if err == nil {
		return species, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Species{}, fmt.Errorf("exact name lookup failed: %w", err)
	}

	// Tier 2: substring, case-insensitive.
	species, err = s.speciesRepository.FindByNameSubstring(ctx, name)
	if err == nil {
		return species, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Species{}, fmt.Errorf("substring name lookup failed: %w", err)
	}

	// Tiers 3 and 4: diacritic-stripped comparison over the whole catalog.
	names, err := s.speciesRepository.ListScientificNames(ctx)
	if err != nil {
		return models.Species{}, fmt.Errorf("normalized name scan failed: %w", err)
	}

	folded := geo.Fold(name)

	for _, candidate := range names {
		if geo.Fold(candidate.ScientificName) == folded {
			log.Debug().Str("query", name).Int64("id", candidate.SpeciesID).Msg("resolved via normalized equality")
			return s.speciesRepository.GetSpeciesByID(ctx, candidate.SpeciesID)
		}
	}

	for _, candidate := range names {
		if strings.Contains(geo.Fold(candidate.ScientificName), folded) {
			log.Debug().Str("query", name).Int64("id", candidate.SpeciesID).Msg("resolved via normalized containment")
			return s.speciesRepository.GetSpeciesByID(ctx, candidate.SpeciesID)
		}
	}

	return models.Species{}, store.ErrNotFound
}
