package entity

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
)

// Field length limits applied at the boundary layer.
const (
	maxURLLength   = 2048
	maxTitleLength = 500
	maxSlugLength  = 100
)

// slugPattern matches lowercase URL slugs like "technology" or "newsdesk-verify".
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateEmail validates the format of an email address.
// Returns a ValidationError if the address is empty or malformed.
func ValidateEmail(address string) error {
	if address == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

// ValidateSlug validates a URL slug for categories and departments.
// Slugs must be lowercase alphanumeric with single dashes.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("slug must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{Field: "slug", Message: "slug must be lowercase letters, digits and dashes"}
	}
	return nil
}

// ValidateTitle validates an article title.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateImageURL validates an optional article image URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a valid host.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "imageUrl",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "imageUrl", Message: "invalid url"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "imageUrl", Message: "url must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: "imageUrl", Message: "url must have a valid host"}
	}
	return nil
}
