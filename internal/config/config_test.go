package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://tt.cd.cz/api/v2", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.HTTPTimeout)
	assert.Equal(t, 20*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Search.PriceTimeout)
	assert.Equal(t, 8, cfg.Search.MaxResults)
	assert.Equal(t, 10, cfg.Search.MaxLocations)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_BASE_URL", "http://localhost:8081/api")
	t.Setenv("SEARCH_MAX_RESULTS", "3")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 3, cfg.Search.MaxResults)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"port out of range", "SERVER_PORT", "70000", "SERVER_PORT"},
		{"relative upstream URL", "UPSTREAM_BASE_URL", "tt.cd.cz/api", "UPSTREAM_BASE_URL"},
		{"zero max results", "SEARCH_MAX_RESULTS", "0", "SEARCH_MAX_RESULTS"},
		{"unknown log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"unknown log format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"unknown environment", "APP_ENV", "qa", "APP_ENV"},
		{"price timeout above search timeout", "SEARCH_PRICE_TIMEOUT", "30s", "SEARCH_PRICE_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
