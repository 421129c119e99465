// Package middleware holds cross-cutting HTTP middleware that is not
// tied to a specific handler: CORS and browser security headers.
package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// CORSConfig is the cross-origin policy applied to browser requests.
type CORSConfig struct {
	// AllowedOrigins is the origin whitelist. Empty means all
	// cross-origin requests are denied.
	AllowedOrigins []string

	// AllowedMethods and AllowedHeaders are advertised on preflight.
	AllowedMethods []string
	AllowedHeaders []string

	// MaxAge is how long browsers may cache preflight results, in seconds.
	MaxAge int

	Logger *slog.Logger
}

// LoadCORSConfig builds a CORSConfig from the environment.
// CORS_ALLOWED_ORIGINS is a comma-separated origin list; unset leaves
// the whitelist empty, which denies all cross-origin requests.
func LoadCORSConfig(logger *slog.Logger) CORSConfig {
	cfg := CORSConfig{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         86400,
		Logger:         logger,
	}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}

func (c CORSConfig) originAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
}

// CORS returns middleware enforcing the cross-origin policy.
// Same-origin requests (no Origin header) pass through untouched.
// Disallowed origins get no CORS headers, so the browser blocks the
// response. Allowed origins are echoed back, and preflight OPTIONS
// requests are answered with 204 without reaching the handlers.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.originAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("cors origin rejected",
						slog.String("origin", origin),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
