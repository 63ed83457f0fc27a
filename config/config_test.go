package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Empty(t, cfg.Pricing.Rules)
		assert.Equal(t, 1000, cfg.Pricing.MaxItemsLength)
		assert.Equal(t, 10000, cfg.History.Size)
		assert.Equal(t, 24*time.Hour, cfg.History.TTL)
		assert.Equal(t, 100, cfg.History.MaxEntries)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
		assert.NotEmpty(t, cfg.Auth.SessionSecretKey)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "checkout_service", cfg.Database.DatabaseName)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("PRICING_RULES", " A:10,B:20:2:30 ")
		_ = os.Setenv("MAX_ITEMS_LENGTH", "64")
		_ = os.Setenv("HISTORY_SIZE", "500")
		_ = os.Setenv("HISTORY_TTL", "10m")
		_ = os.Setenv("HISTORY_MAX_ENTRIES", "20")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("SESSION_SECRET_KEY", "s3cret")
		_ = os.Setenv("SESSION_TTL", "1h")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, "A:10,B:20:2:30", cfg.Pricing.Rules)
		assert.Equal(t, 64, cfg.Pricing.MaxItemsLength)
		assert.Equal(t, 500, cfg.History.Size)
		assert.Equal(t, 10*time.Minute, cfg.History.TTL)
		assert.Equal(t, 20, cfg.History.MaxEntries)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, "s3cret", cfg.Auth.SessionSecretKey)
		assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	})

	t.Run("sessions can be disabled", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("SESSIONS_ENABLED", "false")
		_ = os.Setenv("SESSION_SECRET_KEY", "ignored")
		defer os.Clearenv()

		cfg := Load()

		assert.Empty(t, cfg.Auth.SessionSecretKey)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("HISTORY_TTL", "forever")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 24*time.Hour, cfg.History.TTL)
	})

	t.Run("loads database settings", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://mongo:27017")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "3")
		_ = os.Setenv("CIRCUIT_BREAKER_TIMEOUT", "10s")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URI)
		assert.Equal(t, 3, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 2, cfg.Database.CircuitBreakerSuccessThreshold)
		assert.Equal(t, 10*time.Second, cfg.Database.CircuitBreakerTimeout)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})

	t.Run("appends CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com, ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://shop.example.com",
		}, cfg.Server.CORSOrigins)
	})
}
