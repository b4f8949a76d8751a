package http

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/mock"
	"github.com/vheb/biomap/internal/service"
)

// testServices bundles the per-interface service mocks behind one controller.
type testServices struct {
	auth       *mock.MockAuthService
	species    *mock.MockSpeciesService
	search     *mock.MockSearchService
	enrichment *mock.MockEnrichmentService
	maps       *mock.MockMapService
	contact    *mock.MockContactService
}

func newTestServer(t *testing.T) (*httptest.Server, *testServices, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:       mock.NewMockAuthService(ctrl),
		species:    mock.NewMockSpeciesService(ctrl),
		search:     mock.NewMockSearchService(ctrl),
		enrichment: mock.NewMockEnrichmentService(ctrl),
		maps:       mock.NewMockMapService(ctrl),
		contact:    mock.NewMockContactService(ctrl),
	}

	services := &service.Services{
		Auth:       mocks.auth,
		Species:    mocks.species,
		Search:     mocks.search,
		Enrichment: mocks.enrichment,
		Maps:       mocks.maps,
		Contact:    mocks.contact,
	}

	cfg := &config.StructuredConfig{}
	cfg.App.Version = "test"
	cfg.Storage.Media.MapsDir = t.TempDir()

	handler := NewHandler(services, cfg, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv, mocks, ctrl
}
