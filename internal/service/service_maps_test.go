package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vheb/biomap/internal/geo"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/mock"
)

func newTestMapSvc(t *testing.T) (*mapService, *mock.MockGeoDataSource, string, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mock.NewMockGeoDataSource(ctrl)
	dir := t.TempDir()
	svc := NewMapService(source, geo.NewRenderer(dir, logger.Nop()), logger.Nop()).(*mapService)
	return svc, source, dir, ctrl
}

// statePolygons builds a two-state collection good enough for rasterizing.
func statePolygons() *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()

	sp := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}})
	sp.Properties["name"] = "São Paulo"
	collection.Append(sp)

	rj := geojson.NewFeature(orb.Polygon{{{1, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 0}}})
	rj.Properties["name"] = "Rio de Janeiro"
	collection.Append(rj)

	return collection
}

func TestMapService_RenderOccurrenceMap_Success(t *testing.T) {
	svc, source, dir, ctrl := newTestMapSvc(t)
	defer ctrl.Finish()

	source.EXPECT().
		FetchStatePolygons(gomock.Any()).
		Return(statePolygons(), nil)

	name := svc.RenderOccurrenceMap(context.Background(), "São Paulo", "Brachyteles arachnoides")
	require.Equal(t, "Brachyteles_arachnoides.png", name)

	_, err := os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err, "expected rendered artifact on disk")
}

func TestMapService_RenderOccurrenceMap_ReusesExistingArtifact(t *testing.T) {
	svc, _, dir, ctrl := newTestMapSvc(t)
	defer ctrl.Finish()

	// Artifact already on disk: no polygon fetch expected.
	existing := filepath.Join(dir, "Panthera_onca.png")
	require.NoError(t, os.WriteFile(existing, []byte("png"), 0o644))

	name := svc.RenderOccurrenceMap(context.Background(), "Amazonas", "Panthera onca")
	assert.Equal(t, "Panthera_onca.png", name)
}

func TestMapService_RenderOccurrenceMap_EmptyDescriptor(t *testing.T) {
	svc, _, _, ctrl := newTestMapSvc(t)
	defer ctrl.Finish()

	name := svc.RenderOccurrenceMap(context.Background(), "", "Panthera onca")
	assert.Empty(t, name)
}

func TestMapService_RenderOccurrenceMap_FetchFailureIsBestEffort(t *testing.T) {
	svc, source, _, ctrl := newTestMapSvc(t)
	defer ctrl.Finish()

	source.EXPECT().
		FetchStatePolygons(gomock.Any()).
		Return(nil, errors.New("upstream down"))

	name := svc.RenderOccurrenceMap(context.Background(), "São Paulo", "Panthera onca")
	assert.Empty(t, name)
}

func TestMapService_RenderOccurrenceMap_RenderFailureIsBestEffort(t *testing.T) {
	svc, source, _, ctrl := newTestMapSvc(t)
	defer ctrl.Finish()

	// An empty collection makes the renderer fail.
	source.EXPECT().
		FetchStatePolygons(gomock.Any()).
		Return(geojson.NewFeatureCollection(), nil)

	name := svc.RenderOccurrenceMap(context.Background(), "São Paulo", "Panthera onca")
	assert.Empty(t, name)
}
