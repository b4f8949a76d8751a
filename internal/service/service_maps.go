package service

import (
	"context"
	"os"

	"github.com/vheb/biomap/internal/adapter"
	"github.com/vheb/biomap/internal/geo"
	"github.com/vheb/biomap/internal/logger"
)

// mapService is the concrete implementation of [MapService]. It parses the
// free-text occurrence descriptor of a record into a set of states and
// renders the choropleth, reusing an artifact already on disk for the same
// scientific name.
type mapService struct {
	geoData  adapter.GeoDataSource
	renderer *geo.Renderer
	logger   *logger.Logger
}

// NewMapService constructs a [MapService] over the given polygon source and
// renderer.
func NewMapService(geoData adapter.GeoDataSource, renderer *geo.Renderer, logger *logger.Logger) MapService {
	return &mapService{
		geoData:  geoData,
		renderer: renderer,
		logger:   logger,
	}
}

// RenderOccurrenceMap returns the path, relative to the maps directory, of
// the occurrence choropleth for the given record.
//
// The map is strictly best-effort: an empty or unresolvable descriptor, a
// dataset fetch failure, and a render failure all yield "" with a logged
// warning, never an error. An artifact already on disk for the scientific
// name is reused without re-rendering.
func (m *mapService) RenderOccurrenceMap(ctx context.Context, regionDescriptor, scientificName string) string {
	log := logger.FromContext(ctx)

	occurrences := geo.ResolveOccurrences(regionDescriptor)
	if len(occurrences) == 0 {
		return ""
	}

	name := geo.ArtifactName(scientificName)
	if _, err := os.Stat(m.renderer.ArtifactPath(scientificName)); err == nil {
		return name
	}

	collection, err := m.geoData.FetchStatePolygons(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("state polygon fetch failed, map omitted")
		return ""
	}

	rendered, err := m.renderer.Render(collection, occurrences, scientificName)
	if err != nil {
		log.Warn().Err(err).Str("scientific_name", scientificName).Msg("map render failed, map omitted")
		return ""
	}

	return rendered
}
