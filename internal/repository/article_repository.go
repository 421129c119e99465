// Package repository defines the persistence interfaces for the newsroom
// entities. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleWithDetails is an article joined with its resolved category,
// department and author records. The join is computed at read time:
// an article whose category or author cannot be resolved is excluded
// from results entirely, while a missing department simply yields a
// nil Department.
type ArticleWithDetails struct {
	Article    *entity.Article
	Category   *entity.Category
	Department *entity.Department
	Author     *entity.User
}

// ArticlePatch is a partial article update. Nil fields leave the stored
// value unchanged. The repository applies the patch atomically, so
// concurrent patches on the same article never overwrite each other's
// fields.
type ArticlePatch struct {
	Title        *string
	Content      *string
	Summary      *string
	ImageURL     *string
	CategoryID   *int64
	DepartmentID *int64
	IsBreaking   *bool
	BreakingText *string
	IsPublished  *bool
}

// ArticleRepository is the storage contract for articles.
//
// All read operations return enriched articles. Get and BreakingNews
// return (nil, nil) when nothing qualifies; list operations silently
// drop articles whose enrichment fails.
type ArticleRepository interface {
	// List retrieves enriched articles ordered by created_at descending,
	// paginated by limit and offset.
	List(ctx context.Context, limit, offset int) ([]ArticleWithDetails, error)
	// ListPublished retrieves enriched published articles ordered by
	// publication time (published_at, falling back to created_at) descending.
	ListPublished(ctx context.Context, limit, offset int) ([]ArticleWithDetails, error)
	// Get retrieves a single enriched article.
	// Returns (nil, nil) if the article does not exist or its category
	// or author cannot be resolved.
	Get(ctx context.Context, id int64) (*ArticleWithDetails, error)
	// GetRaw retrieves the stored article without enrichment.
	// Returns (nil, nil) if the article does not exist. Used by update
	// paths that merge partial input over the stored record.
	GetRaw(ctx context.Context, id int64) (*entity.Article, error)
	// BreakingNews returns the most recently published article flagged
	// both breaking and published, enriched. Returns (nil, nil) when no
	// article qualifies.
	BreakingNews(ctx context.Context) (*ArticleWithDetails, error)
	// Create stores a new article. The implementation assigns the id and
	// stamps created_at/updated_at; published_at is set to now when the
	// article is created already published.
	Create(ctx context.Context, article *entity.Article) error
	// Update applies the patch to the stored article atomically, restamps
	// updated_at and returns the merged record. published_at is set to
	// now only when the merged article is published and no published_at
	// existed before; it is never cleared.
	// Returns entity.ErrNotFound for an unknown id.
	Update(ctx context.Context, id int64, patch ArticlePatch) (*entity.Article, error)
	// Delete removes an article. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id int64) error
	// Count returns the total number of stored articles, enriched or not.
	Count(ctx context.Context) (int64, error)
}
