// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/database"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// DefaultEnvPaths are tried in order; the first readable file wins
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

// RateLimitConfig controls the per-client token bucket
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Config holds every runtime setting of the server
type Config struct {
	Port                 string
	GinMode              string
	Database             database.Config
	AllowedOrigins       []string
	RateLimit            RateLimitConfig
	AnalyticsRefreshCron string
	SeedFile             string
}

// Load reads a .env file if one exists, then the environment.
// Variables already set in the environment take precedence over the file.
func Load(envPaths ...string) (*Config, error) {
	if len(envPaths) == 0 {
		envPaths = DefaultEnvPaths
	}
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			log.Printf("📄 Loaded .env from %s", p)
			break
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:    getEnv("PORT", "3001"),
		GinMode: os.Getenv("GIN_MODE"),
		Database: database.Config{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", constants.DriverSQLite)),
			Host:       os.Getenv("DB_HOST"),
			Port:       getEnv("DB_PORT", "4000"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Database:   getEnv("DB_NAME", "dynamic_forms"),
			SQLitePath: getEnv("SQLITE_PATH", "data/dynamic_forms.db"),
		},
		AllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		AnalyticsRefreshCron: getEnv("ANALYTICS_REFRESH_CRON", "*/5 * * * *"),
		SeedFile:             os.Getenv("SEED_FILE"),
	}

	switch cfg.Database.Driver {
	case constants.DriverMySQL, constants.DriverSQLite:
	default:
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", constants.DriverMySQL, constants.DriverSQLite, cfg.Database.Driver)
	}

	var err error
	if cfg.RateLimit.Enabled, err = getBool("RATE_LIMIT_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RPS, err = getFloat("RATE_LIMIT_RPS", 20); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = getInt("RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
