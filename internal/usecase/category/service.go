// Package category provides use cases for the category catalog.
package category

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryID indicates that the provided category ID is invalid.
	ErrInvalidCategoryID = errors.New("invalid category ID")
)

// CreateInput represents the input parameters for creating a category.
type CreateInput struct {
	Name string
	Slug string
}

// Service provides category catalog use cases.
type Service struct {
	Repo repository.CategoryRepository
}

// List retrieves all categories.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get retrieves a single category by its ID.
// Returns ErrInvalidCategoryID if the ID is not positive.
// Returns ErrCategoryNotFound if the category does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// Create validates the input and stores a new category.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateSlug(in.Slug); err != nil {
		return nil, fmt.Errorf("validate slug: %w", err)
	}

	c := &entity.Category{Name: in.Name, Slug: in.Slug}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Delete removes a category. Articles referencing it are kept; they
// drop out of enriched reads until reassigned.
// Returns ErrInvalidCategoryID if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
