// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration. Infra values live here and
// are passed as typed config into builders.
type Config struct {
	HTTPPort    string
	DatabaseURL string

	// AllowMultipleAuthorProfiles controls whether one user may hold several
	// "pen name" author profiles. The schema permits many; the default
	// policy is one per user.
	AllowMultipleAuthorProfiles bool
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		HTTPPort:                    port,
		DatabaseURL:                 os.Getenv("DATABASE_URL"),
		AllowMultipleAuthorProfiles: envBool("ALLOW_MULTIPLE_AUTHOR_PROFILES", false),
	}
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
