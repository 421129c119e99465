// Package pagination provides offset-based pagination helpers shared by
// the HTTP handlers and use cases.
package pagination

import (
	pkgconfig "newsdesk/pkg/config"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultLimit int // Items per page when the request does not set one
	MaxLimit     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration:
// limit=50, max=200.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 50,
		MaxLimit:     200,
	}
}

// LoadFromEnv loads pagination config from environment variables,
// falling back to DefaultConfig values.
//
// Supported environment variables:
//   - PAGINATION_DEFAULT_LIMIT: default items per page
//   - PAGINATION_MAX_LIMIT: maximum items per page
func LoadFromEnv() Config {
	defaults := DefaultConfig()
	return Config{
		DefaultLimit: pkgconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", defaults.DefaultLimit),
		MaxLimit:     pkgconfig.GetEnvInt("PAGINATION_MAX_LIMIT", defaults.MaxLimit),
	}
}
