// Package department provides use cases for the department catalog.
package department

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Sentinel errors for department use case operations.
var (
	// ErrDepartmentNotFound indicates that the requested department was not found.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrInvalidDepartmentID indicates that the provided department ID is invalid.
	ErrInvalidDepartmentID = errors.New("invalid department ID")
)

// CreateInput represents the input parameters for creating a department.
type CreateInput struct {
	Name string
	Slug string
}

// Service provides department catalog use cases.
type Service struct {
	Repo repository.DepartmentRepository
}

// List retrieves all departments.
func (s *Service) List(ctx context.Context) ([]*entity.Department, error) {
	departments, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// Get retrieves a single department by its ID.
// Returns ErrInvalidDepartmentID if the ID is not positive.
// Returns ErrDepartmentNotFound if the department does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Department, error) {
	if id <= 0 {
		return nil, ErrInvalidDepartmentID
	}

	d, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	if d == nil {
		return nil, ErrDepartmentNotFound
	}
	return d, nil
}

// Create validates the input and stores a new department.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Department, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateSlug(in.Slug); err != nil {
		return nil, fmt.Errorf("validate slug: %w", err)
	}

	d := &entity.Department{Name: in.Name, Slug: in.Slug}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

// Delete removes a department. Articles and users referencing it keep
// their reference; enriched reads resolve it to null from then on.
// Returns ErrInvalidDepartmentID if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDepartmentID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
