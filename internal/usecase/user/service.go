package user

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a staff
// account. An empty Role defaults to editor.
type CreateInput struct {
	Email        string
	Password     string
	Name         string
	Role         string
	DepartmentID *int64
}

// UpdateInput represents the input parameters for updating a staff
// account. Fields with nil values are left unchanged.
type UpdateInput struct {
	ID           int64
	Email        *string
	Password     *string
	Name         *string
	Role         *string
	DepartmentID *int64
}

// Service provides staff account management use cases.
type Service struct {
	Repo repository.UserRepository
}

// List retrieves all staff accounts.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get retrieves a single staff account by its ID.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the account does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Create validates the input and stores a new staff account.
// Returns ErrEmailTaken when the email is already registered.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("validate email: %w", err)
	}
	if in.Password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "is required"}
	}
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &entity.User{
		Email:        in.Email,
		Password:     in.Password,
		Name:         in.Name,
		Role:         in.Role,
		DepartmentID: in.DepartmentID,
	}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("validate user: %w", err)
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Update modifies an existing staff account. Only non-nil input fields
// are applied.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the account does not exist.
// Returns ErrEmailTaken when changing the email to one another account uses.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidUserID
	}

	u, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if in.Email != nil && *in.Email != u.Email {
		if err := entity.ValidateEmail(*in.Email); err != nil {
			return nil, fmt.Errorf("validate email: %w", err)
		}
		existing, err := s.Repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, fmt.Errorf("get user by email: %w", err)
		}
		if existing != nil && existing.ID != u.ID {
			return nil, ErrEmailTaken
		}
	}
	if in.Password != nil && *in.Password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "cannot be empty"}
	}
	if in.Name != nil && *in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if in.Role != nil && *in.Role != entity.RoleAdmin && *in.Role != entity.RoleEditor {
		return nil, &entity.ValidationError{Field: "role", Message: "must be admin or editor"}
	}

	// The field merge happens in the repository so concurrent updates on
	// the same account cannot erase each other's changes.
	updated, err := s.Repo.Update(ctx, in.ID, repository.UserPatch{
		Email:        in.Email,
		Password:     in.Password,
		Name:         in.Name,
		Role:         in.Role,
		DepartmentID: in.DepartmentID,
	})
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if errors.Is(err, entity.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete removes a staff account. Articles authored by the account are
// kept; reads resolve them until then-dangling references drop out.
// Returns ErrInvalidUserID if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
