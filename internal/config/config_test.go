package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dinewise")
	t.Setenv("YELP_API_KEY", "key")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "")
		t.Setenv("REDIS_DB", "")
		t.Setenv("YELP_BASE_URL", "")
		t.Setenv("DETAIL_CACHE_TTL_SECONDS", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, "https://api.yelp.com/v3", cfg.YelpBaseURL)
		require.Equal(t, "localhost:6379", cfg.RedisAddr)
		require.Equal(t, 0, cfg.RedisDB)
		require.Equal(t, 5*time.Minute, cfg.DetailTTL)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "9090")
		t.Setenv("YELP_BASE_URL", "http://127.0.0.1:1234/v3")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("DETAIL_CACHE_TTL_SECONDS", "60")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 9090, cfg.Port)
		require.Equal(t, "http://127.0.0.1:1234/v3", cfg.YelpBaseURL)
		require.Equal(t, 2, cfg.RedisDB)
		require.Equal(t, time.Minute, cfg.DetailTTL)
	})

	t.Run("missing required", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		require.Error(t, err)

		setRequired(t)
		t.Setenv("YELP_API_KEY", "")
		_, err = Load()
		require.Error(t, err)

		setRequired(t)
		t.Setenv("JWT_SECRET", "")
		_, err = Load()
		require.Error(t, err)
	})

	t.Run("bad int", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "not-a-number")
		_, err := Load()
		require.Error(t, err)
	})
}
