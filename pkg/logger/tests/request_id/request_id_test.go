package requestid_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Run("Переданный идентификатор сохраняется", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "incoming-id")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "incoming-id", id)
	})

	t.Run("Пустой идентификатор заменяется сгенерированным", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		require.NotEmpty(t, id)

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("Контекст без идентификатора", func(t *testing.T) {
		id, ok := logger.GetRequestID(context.Background())

		assert.False(t, ok)
		assert.Empty(t, id)
	})

	t.Run("Сгенерированные идентификаторы уникальны", func(t *testing.T) {
		assert.NotEqual(t, logger.GenerateRequestID(), logger.GenerateRequestID())
	})
}
