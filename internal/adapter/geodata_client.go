package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/paulmach/orb/geojson"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
)

// geoDataClient fetches the Brazil state-boundary FeatureCollection from its
// fixed dataset URL. It implements [GeoDataSource].
type geoDataClient struct {
	client     *resty.Client
	datasetURL string
	logger     *logger.Logger
}

// NewGeoDataClient constructs a [GeoDataSource] for the configured dataset.
func NewGeoDataClient(cfg config.GeoData, logger *logger.Logger) GeoDataSource {
	cli := resty.New().
		SetTimeout(cfg.RequestTimeout)

	return &geoDataClient{
		client:     cli,
		datasetURL: cfg.DatasetURL,
		logger:     logger,
	}
}

// FetchStatePolygons implements [GeoDataSource].
func (c *geoDataClient) FetchStatePolygons(ctx context.Context) (*geojson.FeatureCollection, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.datasetURL)
	if err != nil {
		return nil, fmt.Errorf("geodata fetch request: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: geodata fetch returned %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	collection, err := geojson.UnmarshalFeatureCollection(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode geodata response: %w", err)
	}

	return collection, nil
}
