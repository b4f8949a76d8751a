package http

import (
	"encoding/json"
	"net/http"

	"github.com/vheb/biomap/internal/app"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/utils"
	"github.com/vheb/biomap/models"
)

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.Contact.Send(ctx, msg); err != nil {
		log.Err(err).Str("from", msg.Email).Msg("contact message relay ended with error")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "message sent"}, http.StatusOK)
}
