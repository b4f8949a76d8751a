package service

import (
	"context"
	"fmt"

	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/internal/validators"
	"github.com/vheb/biomap/models"
)

// speciesService is the concrete implementation of [SpeciesService].
type speciesService struct {
	userRepository    store.UserRepository
	speciesRepository store.SpeciesRepository
	logger            *logger.Logger
}

// NewSpeciesService constructs a [SpeciesService] over the given repositories.
func NewSpeciesService(userRepository store.UserRepository, speciesRepository store.SpeciesRepository, logger *logger.Logger) SpeciesService {
	return &speciesService{
		userRepository:    userRepository,
		speciesRepository: speciesRepository,
		logger:            logger,
	}
}

// Create validates the record, checks that the submitter's role allows
// catalog authoring, stamps the submitter, and persists.
//
// Returns the persisted record or:
//   - [ErrInvalidDataProvided] (joined with the field-level reason) when
//     validation fails.
//   - [ErrRoleNotAllowed] when the submitter is a common user.
//   - [store.ErrScientificNameAlreadyExists] on a duplicate scientific name.
func (s *speciesService) Create(ctx context.Context, species models.Species, submitterID int64) (models.Species, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateSpecies(species); err != nil {
		log.Err(err).Str("scientific_name", species.ScientificName).Msg("invalid species data provided")
		return models.Species{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	submitter, err := s.userRepository.FindUserByID(ctx, submitterID)
	if err != nil {
		return models.Species{}, fmt.Errorf("submitter lookup failed: %w", err)
	}

	if !submitter.Role.CanSubmitSpecies() {
		log.Warn().Int64("id", submitterID).Str("role", string(submitter.Role)).Msg("species submission denied")
		return models.Species{}, ErrRoleNotAllowed
	}

	species.SubmitterID = submitterID

	created, err := s.speciesRepository.CreateSpecies(ctx, species)
	if err != nil {
		log.Err(err).Str("scientific_name", species.ScientificName).Msg("species creation ended with error")
		return models.Species{}, fmt.Errorf("species creation ended with error: %w", err)
	}

	return created, nil
}
