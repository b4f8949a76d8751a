package http

import (
	"encoding/json"
	"net/http"

	"github.com/vheb/biomap/internal/app"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/utils"
	"github.com/vheb/biomap/models"
)

func (h *Handler) createSpecies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var species models.Species
	if err := json.NewDecoder(r.Body).Decode(&species); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.Species.Create(ctx, species, userID)
	if err != nil {
		log.Err(err).Str("scientific_name", species.ScientificName).Msg("species creation ended with error")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
