package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("writes body, header and status", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		n, err := WriteJSON(recorder, map[string]string{"status": "ok"}, http.StatusCreated)
		require.NoError(t, err)

		assert.Positive(t, n)
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
	})

	t.Run("unmarshalable payload responds 500", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		_, err := WriteJSON(recorder, func() {}, http.StatusOK)
		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
