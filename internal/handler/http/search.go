package http

import (
	"errors"
	"net/http"
	"path"

	"github.com/vheb/biomap/internal/app"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/internal/utils"
	"github.com/vheb/biomap/models"
)

// mapsURLPrefix is the public URL prefix under which rendered occurrence
// maps are served; see the static route in Init.
const mapsURLPrefix = "/media/maps"

func (h *Handler) searchSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	mode := models.SuggestionMode(r.URL.Query().Get("mode"))

	suggestions, err := h.services.Search.Suggest(ctx, query, mode)
	if err != nil {
		log.Err(err).Str("query", query).Msg("suggestion lookup ended with error")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, suggestions, http.StatusOK)
}

func (h *Handler) searchResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := r.URL.Query().Get("name")

	species, err := h.services.Search.Resolve(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, models.SearchResult{Found: false}, http.StatusOK)
			return
		}

		log.Err(err).Str("name", name).Msg("name resolution ended with error")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	result := models.SearchResult{
		Found:    true,
		Species:  &species,
		ImageURL: h.services.Enrichment.ImageURL(ctx, species.ScientificName),
	}

	descriptor := species.States
	if descriptor == "" {
		descriptor = species.Region
	}
	if artifact := h.services.Maps.RenderOccurrenceMap(ctx, descriptor, species.ScientificName); artifact != "" {
		result.MapPath = path.Join(mapsURLPrefix, artifact)
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
