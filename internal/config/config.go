package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"beautydash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Generator GeneratorConfig
	Export    ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// GeneratorConfig holds dataset synthesis settings
type GeneratorConfig struct {
	StartDate time.Time
	Days      int
	Brands    []string
	Seed      int64
}

// ExportConfig holds spreadsheet export settings
type ExportConfig struct {
	OutputFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Export: ExportConfig{
			OutputFile: getEnvOrDefault("EXPORT_FILE", "beautydash.xlsx"),
		},
	}

	genConfig, err := loadGeneratorConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load generator configuration")
	}
	config.Generator = *genConfig

	return config, nil
}

func loadGeneratorConfig() (*GeneratorConfig, error) {
	days := getEnvIntOrDefault("DASH_DAYS", 90)
	if days < 0 {
		return nil, errors.ConfigInvalid("DASH_DAYS must be non-negative")
	}

	// Default horizon ends today, like the dashboard's 90-day lookback
	start := time.Now().UTC().AddDate(0, 0, -(days - 1))
	if raw := os.Getenv("DASH_START_DATE"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.ConfigInvalid("DASH_START_DATE must be YYYY-MM-DD")
		}
		start = parsed
	}

	var brands []string
	if raw := os.Getenv("DASH_BRANDS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(b); trimmed != "" {
				brands = append(brands, trimmed)
			}
		}
		if len(brands) == 0 {
			return nil, errors.ConfigInvalid("DASH_BRANDS is set but contains no brand names")
		}
	}

	return &GeneratorConfig{
		StartDate: start,
		Days:      days,
		Brands:    brands,
		Seed:      getEnvInt64OrDefault("DASH_SEED", 0),
	}, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
