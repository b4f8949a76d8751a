package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vheb/biomap/internal/app"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/utils"
	"github.com/vheb/biomap/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.Auth.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration ended with error")
		writeMappedError(w, err)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.Auth.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		writeMappedError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.Auth.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout exists for client symmetry: sessions are stateless JWTs, so the
// server only acknowledges and the client discards its token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Del("Authorization")
	utils.WriteJSON(w, map[string]string{"status": "logged out"}, http.StatusOK)
}
