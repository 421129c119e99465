package article

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// AuthorID is taken from the authenticated user, not the request body.
type CreateInput struct {
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
}

// UpdateInput represents the input parameters for updating an existing
// article. Fields with nil values are left unchanged.
type UpdateInput struct {
	ID           int64
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

// Service provides article management use cases.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult is a page of enriched articles plus its metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithDetails
	Pagination pagination.Metadata
}

// List retrieves a page of all articles, drafts included, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:  total,
			Limit:  params.Limit,
			Offset: params.Offset,
		},
	}, nil
}

// ListPublished retrieves a page of published articles ordered by
// publication time, newest first. This backs the public feed.
func (s *Service) ListPublished(ctx context.Context, params pagination.Params) ([]repository.ArticleWithDetails, error) {
	articles, err := s.Repo.ListPublished(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single enriched article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist or its
// category or author can no longer be resolved.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithDetails, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Breaking returns the current breaking-news article, or nil when no
// published article is flagged breaking.
func (s *Service) Breaking(ctx context.Context) (*repository.ArticleWithDetails, error) {
	metrics.BreakingNewsLookups.Inc()
	article, err := s.Repo.BreakingNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("breaking news: %w", err)
	}
	return article, nil
}

// Create validates the input and stores a new article.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, fmt.Errorf("validate title: %w", err)
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.Summary == "" {
		return nil, &entity.ValidationError{Field: "summary", Message: "is required"}
	}
	if in.CategoryID <= 0 {
		return nil, &entity.ValidationError{Field: "categoryId", Message: "must be positive"}
	}
	if in.AuthorID <= 0 {
		return nil, &entity.ValidationError{Field: "authorId", Message: "must be positive"}
	}
	if in.ImageURL != nil {
		if err := entity.ValidateImageURL(*in.ImageURL); err != nil {
			return nil, fmt.Errorf("validate image URL: %w", err)
		}
	}

	art := &entity.Article{
		Title:        in.Title,
		Content:      in.Content,
		Summary:      in.Summary,
		ImageURL:     in.ImageURL,
		CategoryID:   in.CategoryID,
		DepartmentID: in.DepartmentID,
		AuthorID:     in.AuthorID,
		IsBreaking:   in.IsBreaking,
		BreakingText: in.BreakingText,
		IsPublished:  in.IsPublished,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.ArticlesCreated.Inc()
	if art.IsPublished {
		metrics.ArticlesPublished.Inc()
	}
	return art, nil
}

// Update modifies an existing article. Only non-nil input fields are
// applied; the merge itself happens inside the repository so concurrent
// updates on the same id cannot erase each other's fields, and the
// stored publication timestamp is preserved.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	current, err := s.Repo.GetRaw(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if current == nil {
		return nil, ErrArticleNotFound
	}
	wasPublished := current.IsPublished

	if in.Title != nil {
		if *in.Title == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, fmt.Errorf("validate title: %w", err)
		}
	}
	if in.Content != nil && *in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "cannot be empty"}
	}
	if in.ImageURL != nil {
		if err := entity.ValidateImageURL(*in.ImageURL); err != nil {
			return nil, fmt.Errorf("validate image URL: %w", err)
		}
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		return nil, &entity.ValidationError{Field: "categoryId", Message: "must be positive"}
	}

	updated, err := s.Repo.Update(ctx, in.ID, repository.ArticlePatch{
		Title:        in.Title,
		Content:      in.Content,
		Summary:      in.Summary,
		ImageURL:     in.ImageURL,
		CategoryID:   in.CategoryID,
		DepartmentID: in.DepartmentID,
		IsBreaking:   in.IsBreaking,
		BreakingText: in.BreakingText,
		IsPublished:  in.IsPublished,
	})
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if updated.IsPublished && !wasPublished {
		metrics.ArticlesPublished.Inc()
	}
	return updated, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
