package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "shopping.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.False(t, cfg.CacheEnabled(), "cache must stay off without a Redis address")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOPLIST_PORT", "8080")
	t.Setenv("SHOPLIST_DATABASE_PATH", "/tmp/items.db")
	t.Setenv("SHOPLIST_REDIS_ADDR", "localhost:6379")
	t.Setenv("SHOPLIST_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/tmp/items.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.CacheEnabled())
}
