// Package auth implements JWT authentication and role-based
// authorization for the newsroom API, plus the token endpoint itself.
package auth

import (
	"net/http"
	"strings"
)

// PublicEndpoints are reachable without any token:
// orchestration probes, the Prometheus scrape target, API docs, and
// the token endpoint itself.
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
}

// publicReads are the reader-facing endpoints: the published feed,
// the breaking-news ticker, and the category/department catalogs.
// Only safe methods are public here; writes still need a token.
var publicReads = []string{
	"/articles/published",
	"/articles/breaking",
	"/categories",
	"/departments",
}

// IsPublicEndpoint reports whether path requires no authentication at
// all. Entries ending in '/' are prefixes; others match exactly, with
// an optional trailing slash.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" {
			return true
		}
	}
	return false
}

// IsPublicRead reports whether the request is an anonymous reader
// access: a safe method on one of the public read endpoints or their
// subpaths.
func IsPublicRead(method, path string) bool {
	if method != http.MethodGet && method != http.MethodHead && method != http.MethodOptions {
		return false
	}
	for _, endpoint := range publicReads {
		if path == endpoint || strings.HasPrefix(path, endpoint+"/") {
			return true
		}
	}
	return false
}
