package service

import (
	"context"

	"github.com/vheb/biomap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles registration, credential verification, token
// lifecycle, and profile maintenance.
type AuthService interface {
	// Register validates the request and atomically creates the base
	// account plus its role-specialization record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates by username and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetProfile returns the account with its role payload.
	GetProfile(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies the mutable profile fields.
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SpeciesService handles catalog record authoring.
type SpeciesService interface {
	// Create validates the record, verifies the submitter's role allows
	// authoring, stamps the submitter, and persists.
	Create(ctx context.Context, species models.Species, submitterID int64) (models.Species, error)
}

// SearchService resolves user-supplied names to catalog records and provides
// incremental suggestions while typing.
type SearchService interface {
	// Suggest returns up to ten deduplicated (common, scientific) pairs
	// whose selected name field contains the query case-insensitively.
	// Queries shorter than two characters return an empty slice without
	// touching the store.
	Suggest(ctx context.Context, query string, mode models.SuggestionMode) ([]models.Suggestion, error)

	// Resolve matches a scientific name with accent- and case-folding
	// tolerance. Returns [store.ErrNotFound] when no tier matches; the
	// caller surfaces that as an empty result, not an error.
	Resolve(ctx context.Context, name string) (models.Species, error)
}

// EnrichmentService provides the best-effort photo lookup for a species
// name. It never fails: on any trouble it returns (and caches) the static
// fallback placeholder.
type EnrichmentService interface {
	ImageURL(ctx context.Context, name string) string
}

// MapService renders the occurrence choropleth for a species. It never
// fails: on any trouble it returns "" and the caller treats the map as
// absent.
type MapService interface {
	RenderOccurrenceMap(ctx context.Context, regionDescriptor, scientificName string) string
}

// ContactService relays a contact-form message to the operator.
type ContactService interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}
