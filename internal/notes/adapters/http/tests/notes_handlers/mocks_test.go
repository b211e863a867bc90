package noteshandlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	adapterhttp "notekeep/internal/notes/adapters/http"
	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/domain/entities"
)

// mockNoteService - ручной мок сервисного слоя для тестов обработчиков.
type mockNoteService struct {
	listNotesFn  func(ctx context.Context, page, limit int) ([]*entities.Note, error)
	createNoteFn func(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error)
	getNoteFn    func(ctx context.Context, noteID string) (*entities.Note, error)
	updateNoteFn func(ctx context.Context, noteID string, req *dto.UpdateNoteRequest) (*entities.Note, error)
	deleteNoteFn func(ctx context.Context, noteID string) error
}

func (m *mockNoteService) ListNotes(ctx context.Context, page, limit int) ([]*entities.Note, error) {
	return m.listNotesFn(ctx, page, limit)
}

func (m *mockNoteService) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error) {
	return m.createNoteFn(ctx, req)
}

func (m *mockNoteService) GetNote(ctx context.Context, noteID string) (*entities.Note, error) {
	return m.getNoteFn(ctx, noteID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, noteID string, req *dto.UpdateNoteRequest) (*entities.Note, error) {
	return m.updateNoteFn(ctx, noteID, req)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID string) error {
	return m.deleteNoteFn(ctx, noteID)
}

// newTestApp собирает приложение с полным набором маршрутов и middleware.
func newTestApp(service *mockNoteService) *fiber.App {
	app := fiber.New()
	adapterhttp.SetupRouter(app, service)
	return app
}

// decodeBody читает и разбирает тело ответа в указанную структуру.
func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}
