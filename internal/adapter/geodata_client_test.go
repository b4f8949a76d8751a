package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
)

func newTestGeoDataClient(datasetURL string) GeoDataSource {
	return NewGeoDataClient(config.GeoData{
		DatasetURL:     datasetURL,
		RequestTimeout: time.Second,
	}, logger.Nop())
}

func TestFetchStatePolygons_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"properties": {"name": "São Paulo"},
					"geometry": {
						"type": "Polygon",
						"coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	collection, err := newTestGeoDataClient(srv.URL).FetchStatePolygons(context.Background())
	require.NoError(t, err)
	require.Len(t, collection.Features, 1)
	assert.Equal(t, "São Paulo", collection.Features[0].Properties["name"])
}

func TestFetchStatePolygons_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestGeoDataClient(srv.URL).FetchStatePolygons(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestFetchStatePolygons_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "NotACollection"}`))
	}))
	defer srv.Close()

	_, err := newTestGeoDataClient(srv.URL).FetchStatePolygons(context.Background())
	assert.Error(t, err)
}
