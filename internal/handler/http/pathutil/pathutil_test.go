package pathutil

import (
	"errors"
	"testing"
)

func TestExtractID(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{"valid", "/articles/123", "/articles/", 123, false},
		{"valid user", "/users/1", "/users/", 1, false},
		{"not a number", "/articles/abc", "/articles/", 0, true},
		{"zero", "/articles/0", "/articles/", 0, true},
		{"negative", "/articles/-4", "/articles/", 0, true},
		{"empty", "/articles/", "/articles/", 0, true},
		{"trailing segment", "/articles/12/extra", "/articles/", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractID(tc.path, tc.prefix)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("err=%v, want ErrInvalidID", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("ExtractID=%d, %v; want %d", got, err, tc.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/articles/123", "/articles/:id"},
		{"/articles/123/", "/articles/:id"},
		{"/articles/123?fields=title", "/articles/:id"},
		{"/users/7", "/users/:id"},
		{"/categories/2", "/categories/:id"},
		{"/departments/9", "/departments/:id"},
		{"/articles/published", "/articles/published"},
		{"/articles/breaking", "/articles/breaking"},
		{"/health", "/health"},
		{"/auth/token", "/auth/token"},
		{"/", "/"},
	}
	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Errorf("NormalizePath(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
