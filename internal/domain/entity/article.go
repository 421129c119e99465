// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Category, Department and
// User, along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a news article entity in the system.
// CategoryID and AuthorID are required references; DepartmentID is optional.
// References are not enforced at write time: an article may point at a
// category or author that no longer exists, in which case it is silently
// excluded from enriched read views.
type Article struct {
	ID           int64
	Title        string
	Content      string
	Summary      string
	ImageURL     *string
	CategoryID   int64
	DepartmentID *int64
	AuthorID     int64
	IsBreaking   bool
	BreakingText *string
	IsPublished  bool
	// PublishedAt is set exactly once, the first time IsPublished becomes
	// true. It is never cleared or changed afterwards, even if the article
	// is unpublished and published again.
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublicationTime returns the timestamp used for ordering published
// articles: PublishedAt when set, otherwise CreatedAt.
func (a *Article) PublicationTime() time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}
