package http

import (
	"encoding/json"
	"net/http"

	"github.com/vheb/biomap/internal/app"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/utils"
	"github.com/vheb/biomap/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	user, err := h.services.Auth.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup ended with error")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.Auth.UpdateProfile(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update ended with error")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
