// Package adapter wraps the application's outbound collaborators: the
// external image-metadata service, the state-polygon dataset, and the SMTP
// relay for contact messages. Every adapter is best-effort from the caller's
// point of view; services decide how failures degrade.
package adapter

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/vheb/biomap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ImageSource looks up a representative photograph for a page title against
// an external image-metadata service.
type ImageSource interface {
	// LookupOriginalImage returns the URL of the original-size image for
	// the exact page title. It returns [ErrNoImage] when the service
	// answers without an original-image field, and a transport error on
	// network failure or a non-200 response.
	LookupOriginalImage(ctx context.Context, title string) (string, error)
}

// GeoDataSource fetches the reference polygon dataset of Brazil's states.
type GeoDataSource interface {
	// FetchStatePolygons downloads and parses the state-boundary
	// FeatureCollection. Each feature carries a "name" property.
	FetchStatePolygons(ctx context.Context) (*geojson.FeatureCollection, error)
}

// Mailer delivers a contact-form message to the operator address.
type Mailer interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}
