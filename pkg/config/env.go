// Package config provides typed environment variable lookups with
// defaults. Malformed values fall back to the default and emit a
// warning rather than failing startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the variable's value, or defaultValue when it
// is unset or empty.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvInt returns the variable parsed as an integer.
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		warnInvalid(key, raw, err)
		return defaultValue
	}
	return v
}

// GetEnvInt64 returns the variable parsed as a 64-bit integer.
func GetEnvInt64(key string, defaultValue int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		warnInvalid(key, raw, err)
		return defaultValue
	}
	return v
}

// GetEnvBool returns the variable parsed as a boolean, accepting the
// forms strconv.ParseBool does ("1", "t", "true", ...).
func GetEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		warnInvalid(key, raw, err)
		return defaultValue
	}
	return v
}

// GetEnvFloat returns the variable parsed as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		warnInvalid(key, raw, err)
		return defaultValue
	}
	return v
}

// GetEnvDuration returns the variable parsed with time.ParseDuration
// (for example "30s" or "1h").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		warnInvalid(key, raw, err)
		return defaultValue
	}
	return v
}

func warnInvalid(key, raw string, err error) {
	slog.Warn("invalid environment value, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.String("error", err.Error()))
}
