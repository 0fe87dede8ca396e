package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults plus database url from environment", func(t *testing.T) {
		t.Setenv("USER_MANAGER_DATABASE_URL", "postgres://localhost:5432/users")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, defaultPort, cfg.Server.Port)
		assert.Equal(t, defaultLogLevel, cfg.Server.LogLevel)
		assert.Equal(t, defaultMinimumAge, cfg.User.MinimumAge)
		assert.Equal(t, "postgres://localhost:5432/users", cfg.Database.URL)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("USER_MANAGER_DATABASE_URL", "postgres://localhost:5432/users")
		t.Setenv("USER_MANAGER_SERVER_PORT", "9090")
		t.Setenv("USER_MANAGER_SERVER_LOG_LEVEL", "debug")
		t.Setenv("USER_MANAGER_USER_MINIMUM_AGE", "21")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 21, cfg.User.MinimumAge)
	})

	t.Run("missing database url fails validation", func(t *testing.T) {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("invalid log level fails validation", func(t *testing.T) {
		t.Setenv("USER_MANAGER_DATABASE_URL", "postgres://localhost:5432/users")
		t.Setenv("USER_MANAGER_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})
}
