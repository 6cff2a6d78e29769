// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port        string `validate:"required,numeric"`
	DatabaseURL string `validate:"required"`
	// RedisURL enables the shared catalog snapshot store when set.
	RedisURL string `validate:"omitempty,url"`

	// ORSAPIKey enables road distances from OpenRouteService; without it
	// travel legs are great-circle estimates.
	ORSAPIKey  string
	ORSBaseURL string `validate:"omitempty,url"`
	ORSProfile string `validate:"required"`

	CatalogKey   string        `validate:"required"`
	CatalogTTL   time.Duration `validate:"gt=0"`
	CatalogLimit int           `validate:"gte=0"`

	LogLevel        string
	SeedPath        string
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Get returns the environment variable key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads and validates the service configuration.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		Port:         Get("PORT", "8080"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		RedisURL:     Get("REDIS_URL", ""),
		ORSAPIKey:    Get("ORS_API_KEY", ""),
		ORSBaseURL:   Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		ORSProfile:   Get("ORS_PROFILE", "driving-car"),
		CatalogKey:   Get("CATALOG_KEY", "catalog:default"),
		CatalogTTL:   getDuration("CATALOG_TTL", 5*time.Minute, &errs),
		CatalogLimit: getInt("CATALOG_LIMIT", 1000, &errs),
		LogLevel:     Get("LOG_LEVEL", "info"),
		SeedPath:     Get("SEED_PATH", "data/seeds/packages.json"),

		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second, &errs),
	}

	if err := validate.Struct(cfg); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("load config: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// DatabaseURL returns DATABASE_URL or an error when it is missing.
func DatabaseURL() (string, error) {
	url := Get("DATABASE_URL", "")
	if url == "" {
		return "", errors.New("DATABASE_URL is required")
	}
	return url, nil
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func getInt(key string, fallback int, errs *[]error) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}
