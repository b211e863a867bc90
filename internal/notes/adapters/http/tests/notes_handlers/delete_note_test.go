package noteshandlers_test

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
)

func TestHandler_DeleteNote(t *testing.T) {
	const noteID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

	t.Run("Успешное удаление без тела ответа", func(t *testing.T) {
		service := &mockNoteService{
			deleteNoteFn: func(_ context.Context, _ string) error {
				return nil
			},
		}
		testApp := newTestApp(service)

		resp, err := testApp.Test(httptest.NewRequest("DELETE", "/notes/"+noteID, nil))
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Empty(t, body)
	})

	t.Run("Заметка не найдена - сообщение с идентификатором", func(t *testing.T) {
		service := &mockNoteService{
			deleteNoteFn: func(_ context.Context, _ string) error {
				return entities.ErrNoteNotFound
			},
		}
		testApp := newTestApp(service)

		resp, err := testApp.Test(httptest.NewRequest("DELETE", "/notes/"+noteID, nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var envelope dto.MessageEnvelope
		decodeBody(t, resp, &envelope)
		assert.Equal(t, dto.StatusFail, envelope.Status)
		assert.Equal(t, fmt.Sprintf("Note with ID: %s not found", noteID), envelope.Message)
	})
}
