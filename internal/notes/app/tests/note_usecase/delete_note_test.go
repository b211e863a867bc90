package noteusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/domain/entities"
)

func TestNoteUseCase_DeleteNote(t *testing.T) {
	ctx := context.Background()

	const noteID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

	t.Run("Успешное удаление заметки", func(t *testing.T) {
		repo := &mockNoteRepository{
			deleteFn: func(_ context.Context, _ string) error {
				return nil
			},
		}

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, noteID)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.deleteCalls)
	})

	t.Run("Невалидный идентификатор отклоняется до репозитория", func(t *testing.T) {
		repo := &mockNoteRepository{}

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, app.ErrInvalidNoteID)
		assert.Equal(t, 0, repo.deleteCalls)
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		repo := &mockNoteRepository{
			deleteFn: func(_ context.Context, _ string) error {
				return entities.ErrNoteNotFound
			},
		}

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, noteID)

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})

	t.Run("Ошибка хранилища оборачивается", func(t *testing.T) {
		repo := &mockNoteRepository{
			deleteFn: func(_ context.Context, _ string) error {
				return errors.New("connection refused")
			},
		}

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, noteID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete note")
	})
}
