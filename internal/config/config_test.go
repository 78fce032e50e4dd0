package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SWSE_LEVEL_SCALING", "")
	t.Setenv("SWSE_PROVIDER_TIMEOUT", "")
	t.Setenv("SWSE_CATALOG_PATH", "")
	t.Setenv("SWSE_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "full", cfg.Engine.LevelScaling)
	assert.Equal(t, time.Duration(0), cfg.Engine.ProviderTimeout)
	assert.Empty(t, cfg.Engine.CatalogPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SWSE_LEVEL_SCALING", "half")
	t.Setenv("SWSE_PROVIDER_TIMEOUT", "250ms")
	t.Setenv("SWSE_CATALOG_PATH", "/etc/swse/domains.yaml")
	t.Setenv("SWSE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "half", cfg.Engine.LevelScaling)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.ProviderTimeout)
	assert.Equal(t, "/etc/swse/domains.yaml", cfg.Engine.CatalogPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownScaling(t *testing.T) {
	t.Setenv("SWSE_LEVEL_SCALING", "double")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWSE_LEVEL_SCALING")
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("SWSE_LEVEL_SCALING", "full")
	t.Setenv("SWSE_LOG_LEVEL", "chatty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWSE_LOG_LEVEL")
}

func TestLoadIgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("SWSE_LEVEL_SCALING", "full")
	t.Setenv("SWSE_PROVIDER_TIMEOUT", "soon")
	t.Setenv("SWSE_LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Engine.ProviderTimeout)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LogConfig{Level: tt.level}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
