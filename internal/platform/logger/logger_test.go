package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearsolutions/user-manager/internal/platform/logger"
)

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	stored := slog.With("component", "test")

	t.Run("returns stored logger when present", func(t *testing.T) {
		t.Parallel()

		ctx := logger.WithLogger(context.Background(), stored)
		assert.Same(t, stored, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("returns fallback when context has no logger", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("returns default when fallback is nil", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, logger.FromContextOrDefault(context.Background(), nil))
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, logger.FromContext(context.Background()))

	stored := slog.With("component", "test")
	ctx := logger.WithLogger(context.Background(), stored)
	assert.Same(t, stored, logger.FromContext(ctx))
}
