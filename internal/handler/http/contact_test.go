package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vheb/biomap/internal/service"
	"github.com/vheb/biomap/models"
)

func TestContact_OK(t *testing.T) {
	srv, mocks, ctrl := newTestServer(t)
	defer ctrl.Finish()

	msg := models.ContactMessage{
		Name:    "Maria",
		Email:   "maria@example.org",
		Subject: "Sighting report",
		Message: "Saw a muriqui group near the reserve border.",
	}

	mocks.contact.EXPECT().
		Send(gomock.Any(), msg).
		Return(nil)

	resp := postJSON(t, srv.URL+"/contact", msg)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestContact_DeliveryFailure(t *testing.T) {
	srv, mocks, ctrl := newTestServer(t)
	defer ctrl.Finish()

	mocks.contact.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(service.ErrContactDeliveryFailed)

	resp := postJSON(t, srv.URL+"/contact", models.ContactMessage{Name: "Maria"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestContact_BlankFields(t *testing.T) {
	srv, mocks, ctrl := newTestServer(t)
	defer ctrl.Finish()

	mocks.contact.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(service.ErrInvalidDataProvided)

	resp := postJSON(t, srv.URL+"/contact", models.ContactMessage{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
