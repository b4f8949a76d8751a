// Package service contains the application's business logic: account and
// token lifecycle, species authoring, the name-resolution engine, best-effort
// enrichment (photos and occurrence maps), and contact relay. Services depend
// on store repositories and outbound adapters through interfaces only.
package service

import (
	"github.com/vheb/biomap/internal/adapter"
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/geo"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
)

// Services aggregates every business-logic service the HTTP handlers depend
// on.
type Services struct {
	Auth       AuthService
	Species    SpeciesService
	Search     SearchService
	Enrichment EnrichmentService
	Maps       MapService
	Contact    ContactService
}

// NewServices wires all services over the given storages and outbound
// adapters.
func NewServices(
	storages *store.Storages,
	imageSource adapter.ImageSource,
	geoData adapter.GeoDataSource,
	mailer adapter.Mailer,
	renderer *geo.Renderer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		Auth:       NewAuthService(storages.UserRepository, cfg.App, logger),
		Species:    NewSpeciesService(storages.UserRepository, storages.SpeciesRepository, logger),
		Search:     NewSearchService(storages.SpeciesRepository, logger),
		Enrichment: NewEnrichmentService(imageSource, storages.Cache, cfg.Image, logger),
		Maps:       NewMapService(geoData, renderer, logger),
		Contact:    NewContactService(mailer, logger),
	}
}
