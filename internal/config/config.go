package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Config holds all configuration for the engine tooling
type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig holds resolution engine tuning
type EngineConfig struct {
	LevelScaling    string        // "full" or "half" threshold level scaling
	ProviderTimeout time.Duration // per-provider budget during collection, 0 means none
	CatalogPath     string        // Optional: YAML overlay on the builtin domain catalog
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Engine: EngineConfig{
			LevelScaling:    getEnvOrDefault("SWSE_LEVEL_SCALING", "full"),
			ProviderTimeout: getEnvAsDurationOrDefault("SWSE_PROVIDER_TIMEOUT", 0),
			CatalogPath:     os.Getenv("SWSE_CATALOG_PATH"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("SWSE_LOG_LEVEL", "info"),
		},
	}

	// Validate required fields
	if cfg.Engine.LevelScaling != "full" && cfg.Engine.LevelScaling != "half" {
		return nil, fmt.Errorf("SWSE_LEVEL_SCALING must be full or half, got %q", cfg.Engine.LevelScaling)
	}
	if cfg.Engine.ProviderTimeout < 0 {
		return nil, fmt.Errorf("SWSE_PROVIDER_TIMEOUT cannot be negative, got %s", cfg.Engine.ProviderTimeout)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("SWSE_LOG_LEVEL must be debug, info, warn or error, got %q", l.Level)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
