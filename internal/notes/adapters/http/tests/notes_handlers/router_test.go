package noteshandlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app/dto"
)

func TestRouter(t *testing.T) {
	t.Run("Проверка работоспособности", func(t *testing.T) {
		testApp := newTestApp(&mockNoteService{})

		resp, err := testApp.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var envelope dto.MessageEnvelope
		decodeBody(t, resp, &envelope)
		assert.Equal(t, dto.StatusSuccess, envelope.Status)
		assert.Equal(t, "OK", envelope.Message)
	})

	t.Run("Несуществующий маршрут", func(t *testing.T) {
		testApp := newTestApp(&mockNoteService{})

		resp, err := testApp.Test(httptest.NewRequest("GET", "/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var envelope dto.MessageEnvelope
		decodeBody(t, resp, &envelope)
		assert.Equal(t, dto.StatusFail, envelope.Status)
		assert.Equal(t, "Route not found", envelope.Message)
	})

	t.Run("Идентификатор запроса возвращается в заголовке", func(t *testing.T) {
		testApp := newTestApp(&mockNoteService{})

		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Request-ID", "test-request-id")

		resp, err := testApp.Test(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, "test-request-id", resp.Header.Get("X-Request-ID"))
	})
}
