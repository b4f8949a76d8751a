package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vheb/biomap/internal/adapter"
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
)

// imageCacheKeyPrefix namespaces enrichment entries in the shared TTL cache.
const imageCacheKeyPrefix = "img_"

// enrichmentService is the concrete implementation of [EnrichmentService].
// Lookups fan out over a few title-casing variants of the species name;
// results, including the fallback on total failure, are cached so repeated
// views of the same species stay off the network.
type enrichmentService struct {
	source       adapter.ImageSource
	cache        store.Cache
	fallbackPath string
	logger       *logger.Logger
}

// NewEnrichmentService constructs an [EnrichmentService] over the given
// image source and cache.
func NewEnrichmentService(source adapter.ImageSource, cache store.Cache, cfg config.Image, logger *logger.Logger) EnrichmentService {
	return &enrichmentService{
		source:       source,
		cache:        cache,
		fallbackPath: cfg.FallbackPath,
		logger:       logger,
	}
}

// ImageURL returns the best image URL known for the species name.
//
// The cache is consulted first under a slug of the name. On a miss, up to
// three title-casing variants are tried against the external service in
// order; the first hit wins. When every variant fails the static fallback is
// returned, and cached too, so a species without a photo does not trigger a
// lookup storm.
func (e *enrichmentService) ImageURL(ctx context.Context, name string) string {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return e.fallbackPath
	}

	key := imageCacheKeyPrefix + slugify(name)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	for _, title := range titleVariants(name) {
		url, err := e.source.LookupOriginalImage(ctx, title)
		if err == nil {
			e.cache.Set(key, url, 0)
			return url
		}

		if !errors.Is(err, adapter.ErrNoImage) {
			log.Warn().Err(err).Str("title", title).Msg("image lookup failed")
		}
	}

	e.cache.Set(key, e.fallbackPath, 0)
	return e.fallbackPath
}

// slugify lowercases the name and replaces every non-alphanumeric rune with
// an underscore, producing a stable cache key component.
func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	return b.String()
}

// titleVariants returns up to three deduplicated casing variants of the name
// to try against the external service: the name as typed, sentence case, and
// every word title-cased.
func titleVariants(name string) []string {
	sentence := name
	if r := []rune(strings.ToLower(name)); len(r) > 0 {
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		sentence = string(r)
	}

	worded := cases.Title(language.BrazilianPortuguese).String(strings.ToLower(name))

	variants := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	for _, v := range []string{name, sentence, worded} {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	return variants
}
