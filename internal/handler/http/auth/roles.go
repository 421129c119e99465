package auth

import "strings"

// Roles carried in JWT claims. They mirror the entity roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Rule grants a set of methods on a set of path patterns. Patterns
// ending in "/*" match the prefix and everything under it; "/*" alone
// matches every path.
type Rule struct {
	Methods []string
	Paths   []string
}

// Permission is an ordered rule list; the first matching rule grants
// access. A flat method+path pair cannot express "read everything,
// write only articles", hence the list.
type Permission struct {
	Rules []Rule
}

// RolePermissions is the authorization table.
// Admins can do anything. Editors can read the whole API but may only
// write articles; user and catalog management stays with admins.
var RolePermissions = map[string]Permission{
	RoleAdmin: {Rules: []Rule{
		{
			Methods: []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			Paths:   []string{"/*"},
		},
	}},
	RoleEditor: {Rules: []Rule{
		{
			Methods: []string{"GET", "HEAD", "OPTIONS"},
			Paths:   []string{"/*"},
		},
		{
			Methods: []string{"POST", "PUT", "PATCH", "DELETE"},
			Paths:   []string{"/articles/*"},
		},
	}},
}

// checkRolePermission reports whether role may perform method on path.
// Unknown and empty roles are denied.
func checkRolePermission(role, method, path string) bool {
	perm, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, rule := range perm.Rules {
		if methodIn(method, rule.Methods) && matchesPathPattern(path, rule.Paths) {
			return true
		}
	}
	return false
}

func methodIn(method string, allowed []string) bool {
	for _, m := range allowed {
		if m == method {
			return true
		}
	}
	return false
}

func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}
		if strings.HasSuffix(pattern, "/*") {
			prefix := strings.TrimSuffix(pattern, "/*")
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
