package config

import (
	"os"
	"strconv"

	"meanci/domain/core"
)

// Config represents the complete application configuration
type Config struct {
	Level        float64 // default confidence level
	ReportFormat string  // "md" or "html"
	Workers      int64   // concurrency bound for the width study
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Level:        getEnvFloatOrDefault("MEANCI_LEVEL", 0.95),
		ReportFormat: getEnvOrDefault("MEANCI_REPORT_FORMAT", "md"),
		Workers:      int64(getEnvIntOrDefault("MEANCI_WORKERS", 4)),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Level <= 0 || config.Level >= 1 {
		return core.NewInvalidInputError("MEANCI_LEVEL", "must lie strictly between 0 and 1")
	}
	if config.ReportFormat != "md" && config.ReportFormat != "html" {
		return core.NewInvalidInputError("MEANCI_REPORT_FORMAT", "must be md or html")
	}
	if config.Workers < 1 {
		return core.NewInvalidInputError("MEANCI_WORKERS", "must be >= 1")
	}
	return nil
}

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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
