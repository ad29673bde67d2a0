package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/books")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/books", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "60-M", cfg.WriteRateLimit)
	assert.Equal(t, 10*time.Minute, cfg.ReferenceCacheTTL)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("RATE_LIMIT_WRITE", "10-S")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REFERENCE_CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "10-S", cfg.WriteRateLimit)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.ReferenceCacheTTL)
}

func TestLoadConfigInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("REFERENCE_CACHE_TTL", "soon")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.ReferenceCacheTTL)
}

func TestLoadConfigProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}
