package memory

import (
	"context"
	"fmt"

	"newsdesk/internal/config"
	"newsdesk/internal/domain/entity"
)

// Seed loads the fixed initial state into an empty store: the admin
// account, the category catalog and the department catalog. The admin
// user always gets id 1 on a fresh store.
func Seed(ctx context.Context, s *Store, cfg config.SeedConfig) error {
	users := NewUserRepo(s)
	if err := users.Create(ctx, &entity.User{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
		Role:     entity.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	categories := NewCategoryRepo(s)
	for _, item := range cfg.Categories {
		if err := categories.Create(ctx, &entity.Category{Name: item.Name, Slug: item.Slug}); err != nil {
			return fmt.Errorf("seed category %q: %w", item.Name, err)
		}
	}

	departments := NewDepartmentRepo(s)
	for _, item := range cfg.Departments {
		if err := departments.Create(ctx, &entity.Department{Name: item.Name, Slug: item.Slug}); err != nil {
			return fmt.Errorf("seed department %q: %w", item.Name, err)
		}
	}
	return nil
}
