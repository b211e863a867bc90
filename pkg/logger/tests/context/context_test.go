package context_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/pkg/logger"
)

func TestContext(t *testing.T) {
	t.Run("Логгер извлекается из контекста", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, got)
	})

	t.Run("Пустой контекст - ошибка", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("Log возвращает логгер из контекста", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		assert.Same(t, testLogger, logger.Log(ctx))
	})

	t.Run("Log без логгера в контексте не возвращает nil", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("Некорректный уровень логирования - ошибка", func(t *testing.T) {
		got, err := logger.NewLogger(logger.Development, "verbose")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrParseLevel)
	})
}
