package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// CategoryRepository is the storage contract for categories.
// Name and slug uniqueness is a schema-level concern enforced at the
// boundary, not here.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentRepository is the storage contract for editorial desks.
type DepartmentRepository interface {
	List(ctx context.Context) ([]*entity.Department, error)
	Get(ctx context.Context, id int64) (*entity.Department, error)
	Create(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id int64) error
}
