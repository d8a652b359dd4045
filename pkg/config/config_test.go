package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		envVars := map[string]string{
			"APP_ENV":          "test",
			"PORT":             "8080",
			"SENTRY_DSN":       "https://test@sentry.io/123",
			"ALLOW_ORIGINS":    "*",
			"DB_DRIVER":        "mongo",
			"DB_NAME":          "testdb",
			"DB_HOST":          "localhost",
			"DB_PORT":          "5432",
			"DB_USER":          "testuser",
			"DB_PASS":          "testpass",
			"ENABLE_SSL":       "true",
			"MONGO_URI":        "mongodb://localhost:27017",
			"MONGO_DB":         "testcatalog",
			"MONGO_COLLECTION": "testmovies",
		}

		for key, value := range envVars {
			t.Setenv(key, value)
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, "*", cfg.AllowOrigins)
		assert.Equal(t, "mongo", cfg.DB.Driver)
		assert.Equal(t, "testdb", cfg.DB.Name)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.Equal(t, "testuser", cfg.DB.User)
		assert.Equal(t, "testpass", cfg.DB.Pass)
		assert.True(t, cfg.DB.EnableSSL)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
		assert.Equal(t, "testcatalog", cfg.Mongo.Database)
		assert.Equal(t, "testmovies", cfg.Mongo.Collection)
	})

	t.Run("defaults to the postgres driver", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid boolean value", func(t *testing.T) {
		t.Setenv("ENABLE_SSL", "not-a-boolean")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})
}
