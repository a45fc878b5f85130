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
	assert.Equal(t, 8788, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)

	assert.False(t, cfg.Upstream.UseRealAPI)
	assert.Equal(t, "https://flights-sky.p.rapidapi.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5.0, cfg.Upstream.RateLimit)
	assert.Equal(t, 10, cfg.Upstream.RateBurst)

	assert.Contains(t, cfg.Directory.DatasetURL, "airports.json")
	assert.Equal(t, 120*time.Millisecond, cfg.Directory.TypeaheadDelay)
	assert.Equal(t, 12, cfg.Directory.SuggestLimit)

	assert.Equal(t, 320*time.Millisecond, cfg.Search.MockDelay)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("USE_REAL_API", "true")
	t.Setenv("SKY_API_KEY", "secret")
	t.Setenv("TYPEAHEAD_DELAY", "50ms")
	t.Setenv("SUGGEST_LIMIT", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Upstream.UseRealAPI)
	assert.Equal(t, "secret", cfg.Upstream.APIKey)
	assert.Equal(t, 50*time.Millisecond, cfg.Directory.TypeaheadDelay)
	assert.Equal(t, 5, cfg.Directory.SuggestLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"port out of range", "SERVER_PORT", "70000", "SERVER_PORT"},
		{"invalid log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"invalid log format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"invalid environment", "APP_ENV", "qa", "APP_ENV"},
		{"zero suggest limit", "SUGGEST_LIMIT", "0", "SUGGEST_LIMIT"},
		{"negative typeahead delay", "TYPEAHEAD_DELAY", "-10ms", "TYPEAHEAD_DELAY"},
		{"empty dataset url", "AIRPORTS_DATASET_URL", "", "AIRPORTS_DATASET_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("real API without a key", func(t *testing.T) {
		t.Setenv("USE_REAL_API", "true")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKY_API_KEY")
	})
}
