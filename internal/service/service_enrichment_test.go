package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vheb/biomap/internal/adapter"
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/mock"
	"github.com/vheb/biomap/internal/store"
)

const fallbackImage = "/static/images/species_placeholder.png"

func newTestEnrichmentSvc(t *testing.T) (*enrichmentService, *mock.MockImageSource, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mock.NewMockImageSource(ctrl)
	cfg := config.Image{FallbackPath: fallbackImage, CacheTTL: time.Minute}
	svc := NewEnrichmentService(source, store.NewTTLCache(time.Minute), cfg, logger.Nop()).(*enrichmentService)
	return svc, source, ctrl
}

func TestEnrichmentService_ImageURL_FirstVariantHit(t *testing.T) {
	svc, source, ctrl := newTestEnrichmentSvc(t)
	defer ctrl.Finish()

	source.EXPECT().
		LookupOriginalImage(gomock.Any(), "Brachyteles arachnoides").
		Return("https://example.org/muriqui.jpg", nil)

	url := svc.ImageURL(context.Background(), "Brachyteles arachnoides")
	assert.Equal(t, "https://example.org/muriqui.jpg", url)
}

func TestEnrichmentService_ImageURL_SecondLookupServedFromCache(t *testing.T) {
	svc, source, ctrl := newTestEnrichmentSvc(t)
	defer ctrl.Finish()

	// A single network call despite two lookups.
	source.EXPECT().
		LookupOriginalImage(gomock.Any(), "Brachyteles arachnoides").
		Return("https://example.org/muriqui.jpg", nil).
		Times(1)

	ctx := context.Background()
	first := svc.ImageURL(ctx, "Brachyteles arachnoides")
	second := svc.ImageURL(ctx, "Brachyteles arachnoides")
	assert.Equal(t, first, second)
}

func TestEnrichmentService_ImageURL_FallsThroughCasingVariants(t *testing.T) {
	svc, source, ctrl := newTestEnrichmentSvc(t)
	defer ctrl.Finish()

	gomock.InOrder(
		source.EXPECT().
			LookupOriginalImage(gomock.Any(), "brachyteles arachnoides").
			Return("", adapter.ErrNoImage),
		source.EXPECT().
			LookupOriginalImage(gomock.Any(), "Brachyteles arachnoides").
			Return("https://example.org/muriqui.jpg", nil),
	)

	url := svc.ImageURL(context.Background(), "brachyteles arachnoides")
	assert.Equal(t, "https://example.org/muriqui.jpg", url)
}

func TestEnrichmentService_ImageURL_TotalFailureCachesFallback(t *testing.T) {
	svc, source, ctrl := newTestEnrichmentSvc(t)
	defer ctrl.Finish()

	source.EXPECT().
		LookupOriginalImage(gomock.Any(), gomock.Any()).
		Return("", adapter.ErrNoImage).
		AnyTimes()

	ctx := context.Background()
	url := svc.ImageURL(ctx, "Ghostus speciesus")
	assert.Equal(t, fallbackImage, url)

	// The miss is cached too, so the repeat lookup stays off the network.
	cached, ok := svc.cache.Get(imageCacheKeyPrefix + "ghostus_speciesus")
	assert.True(t, ok)
	assert.Equal(t, fallbackImage, cached)
}

func TestEnrichmentService_ImageURL_TransportErrorStillFallsBack(t *testing.T) {
	svc, source, ctrl := newTestEnrichmentSvc(t)
	defer ctrl.Finish()

	source.EXPECT().
		LookupOriginalImage(gomock.Any(), gomock.Any()).
		Return("", errors.New("upstream timeout")).
		AnyTimes()

	url := svc.ImageURL(context.Background(), "Panthera onca")
	assert.Equal(t, fallbackImage, url)
}

func TestEnrichmentService_ImageURL_EmptyName(t *testing.T) {
	svc, _, ctrl := newTestEnrichmentSvc(t)
	defer ctrl.Finish()

	url := svc.ImageURL(context.Background(), "   ")
	assert.Equal(t, fallbackImage, url)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brachyteles arachnoides", "brachyteles_arachnoides"},
		{"Açaí", "a_a_"},
		{"A-1 b", "a_1_b"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, slugify(test.in), "slugify(%q)", test.in)
	}
}

func TestTitleVariants(t *testing.T) {
	variants := titleVariants("brachyteles arachnoides")
	assert.Equal(t, []string{
		"brachyteles arachnoides",
		"Brachyteles arachnoides",
		"Brachyteles Arachnoides",
	}, variants)

	// Already sentence-cased input collapses to two variants.
	assert.Len(t, titleVariants("Panthera onca"), 2)
}
