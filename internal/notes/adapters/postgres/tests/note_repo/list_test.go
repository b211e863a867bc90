package noterepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/adapters/postgres"
	"notekeep/internal/notes/domain/entities"
	"notekeep/pkg/logger"
)

func TestNoteRepository_List(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Страница заметок в порядке возрастания ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM notes ORDER BY id").
			WithArgs(2, 0).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "title", "content", "category", "published", "created_at", "updated_at"}).
					AddRow("00000000-0000-0000-0000-000000000001", "first", "first content", "", entities.PublishedFlagFalse, &now, &now).
					AddRow("00000000-0000-0000-0000-000000000002", "second", "second content", "tech", entities.PublishedFlagTrue, &now, &now),
			)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.List(ctx, 2, 0)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "first", notes[0].Title)
		assert.Equal(t, "second", notes[1].Title)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой результат не является ошибкой", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM notes ORDER BY id").
			WithArgs(10, 40).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "title", "content", "category", "published", "created_at", "updated_at"}),
			)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.List(ctx, 10, 40)

		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("SELECT (.+) FROM notes ORDER BY id").
			WithArgs(10, 0).
			WillReturnError(dbError)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.List(ctx, 10, 0)

		assert.Nil(t, notes)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error listing notes")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
