package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/posts?parseTime=true")
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("PUBLIC_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.PublicBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "dsn")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "https://api.example.com", cfg.PublicBaseURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing dsn", env: map[string]string{"DB_DSN": ""}},
		{name: "bad redis db", env: map[string]string{"DB_DSN": "dsn", "REDIS_DB": "x"}},
		{name: "bad ttl", env: map[string]string{"DB_DSN": "dsn", "CACHE_TTL_SECONDS": "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_DB", "")
			t.Setenv("CACHE_TTL_SECONDS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
