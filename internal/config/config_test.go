package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		assert.Equal(t, "custom_value", getEnv("TEST_CONFIG_VAR", "default_value"))
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		assert.Equal(t, "default_value", getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value"))
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		assert.Equal(t, "default_value", getEnv("EMPTY_CONFIG_VAR", "default_value"))
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"minutes", "15m", 15 * time.Minute},
		{"hours", "24h", 24 * time.Hour},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDuration(tt.input))
		})
	}
}

func TestParseScalars(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.False(t, parseBool("0"))
	assert.Equal(t, 587, parseInt("587"))
	assert.InDelta(t, 2.5, parseFloat("2.5"), 0.0001)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, parseList(" http://a.test, ,http://b.test"))
	assert.Nil(t, parseList(""))
}

func TestLoad(t *testing.T) {
	t.Run("loads config with all required env vars", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "coursehub_test")
		t.Setenv("JWT_SECRET", "test-secret-key")
		t.Setenv("S3_ENDPOINT", "minio:9000")
		t.Setenv("S3_BUCKET", "media")
		t.Setenv("S3_PUBLIC_BASE_URL", "")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "coursehub_test", cfg.MongoDatabase)
		assert.Equal(t, "test-secret-key", cfg.JWTSecret)
		assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, 15*time.Minute, cfg.ResetTokenExpiry)
		assert.False(t, cfg.MongoTransactions)
		assert.Equal(t, "http://minio:9000/media", cfg.S3PublicBaseURL)
		assert.Equal(t, 2, cfg.MailWorkers)
		assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	})

	t.Run("honours overrides", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://db:27017")
		t.Setenv("MONGO_DATABASE", "coursehub")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("MONGO_TRANSACTIONS", "true")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com")
		t.Setenv("MAIL_WORKERS", "4")

		cfg := Load()

		assert.True(t, cfg.MongoTransactions)
		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, "https://cdn.example.com", cfg.S3PublicBaseURL)
		assert.Equal(t, 4, cfg.MailWorkers)
	})
}
