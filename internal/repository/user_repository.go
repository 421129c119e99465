package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// UserPatch is a partial account update. Nil fields leave the stored
// value unchanged; the repository applies the patch atomically.
type UserPatch struct {
	Email        *string
	Password     *string
	Name         *string
	Role         *string
	DepartmentID *int64
}

// UserRepository is the storage contract for staff accounts.
// Get and GetByEmail return (nil, nil) when no user matches.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail looks up a user by exact email match.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Create stores a new user, assigning the id and stamping
	// created_at/updated_at.
	Create(ctx context.Context, user *entity.User) error
	// Update applies the patch to the stored account atomically, restamps
	// updated_at and returns the merged record.
	// Returns entity.ErrNotFound for an unknown id.
	Update(ctx context.Context, id int64, patch UserPatch) (*entity.User, error)
	// Delete removes a user. Deleting an unknown id is a no-op.
	// Articles authored by the user are left untouched; they drop out of
	// enriched views instead.
	Delete(ctx context.Context, id int64) error
}
