package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP serve mode
	Port   string
	APIKey string // optional; empty disables auth

	// Upload limits
	MaxUploadBytes int64

	// Transform defaults
	DefaultIndexField string
	DefaultFormat     string
}

func Load() Config {
	cfg := Config{
		Port:   envOr("DXFORM_PORT", "8090"),
		APIKey: os.Getenv("DXFORM_API_KEY"),

		MaxUploadBytes: envInt64("DXFORM_MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultIndexField: envOr("DXFORM_INDEX_FIELD", "ID"),
		DefaultFormat:     envOr("DXFORM_FORMAT", "csv"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultIndexField == "" {
		cfg.DefaultIndexField = "ID"
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "csv"
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("DXFORM_PORT must be numeric, got %q", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
