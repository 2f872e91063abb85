package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, time.Second, cfg.SearchDebounce)
	assert.False(t, cfg.SearchRefreshOnIdle)
	assert.Equal(t, "en", cfg.Locale)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.GetDatabaseConfig().URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("SEARCH_DEBOUNCE", "250ms")
	t.Setenv("SEARCH_REFRESH_ON_IDLE", "true")
	t.Setenv("LOCALE", "fr")
	t.Setenv("ENABLE_METRICS", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	dash := cfg.GetDashboardConfig()
	assert.Equal(t, 20, dash.PageSize)
	assert.Equal(t, 250*time.Millisecond, dash.SearchDebounce)
	assert.True(t, dash.SearchRefreshOnIdle)
	assert.Equal(t, "fr", cfg.GetAPIConfig().Locale)
	assert.False(t, cfg.EnableMetrics, "unparsable values fall back to the default")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:    "development",
			APIBaseURL:     "https://api.example.com",
			APITimeout:     time.Second,
			PageSize:       8,
			SearchDebounce: time.Second,
			MaxOpenConns:   5,
			MaxIdleConns:   2,
			LogLevel:       "info",
			LogFormat:      "json",
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative base url", func(c *Config) { c.APIBaseURL = "/api" }},
		{"production without secret", func(c *Config) { c.Environment = "production" }},
		{"page size too large", func(c *Config) { c.PageSize = 101 }},
		{"negative debounce", func(c *Config) { c.SearchDebounce = -time.Second }},
		{"metrics port", func(c *Config) { c.EnableMetrics = true; c.MetricsPort = 0 }},
		{"pool sizes", func(c *Config) { c.MaxIdleConns = 10 }},
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
