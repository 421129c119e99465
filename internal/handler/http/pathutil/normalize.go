package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to their templates, most specific
// first. Pre-compiled at init.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/articles/\d+$`), "/articles/:id"},
	{regexp.MustCompile(`^/users/\d+$`), "/users/:id"},
	{regexp.MustCompile(`^/categories/\d+$`), "/categories/:id"},
	{regexp.MustCompile(`^/departments/\d+$`), "/departments/:id"},
}

// NormalizePath converts ID-bearing paths (e.g. /articles/123) into
// template form (/articles/:id) so metric label cardinality stays
// bounded. Static paths like /articles/published pass through
// unchanged, as do query parameters and trailing slashes.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
