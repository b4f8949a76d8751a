package http

import (
	"errors"
	"net/http"

	"github.com/vheb/biomap/internal/app"
	"github.com/vheb/biomap/internal/service"
	"github.com/vheb/biomap/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrRoleNotAllowed:          {http.StatusForbidden, app.MsgRoleNotAllowed},
	service.ErrContactDeliveryFailed:   {http.StatusBadGateway, app.MsgContactDeliveryFailed},

	store.ErrNotFound:                        {http.StatusNotFound, app.MsgNotFound},
	store.ErrUsernameAlreadyExists:           {http.StatusConflict, app.MsgUsernameAlreadyExists},
	store.ErrEmailAlreadyExists:              {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrRegistrationNumberAlreadyExists: {http.StatusConflict, app.MsgRegistrationNumberExists},
	store.ErrScientificNameAlreadyExists:     {http.StatusConflict, app.MsgScientificNameExists},
}

// writeMappedError resolves err against the sentinel map and writes the
// matching status and message; unknown errors become a plain 500.
func writeMappedError(w http.ResponseWriter, err error) {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			http.Error(w, response.message, response.status)
			return
		}
	}
	http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
}
