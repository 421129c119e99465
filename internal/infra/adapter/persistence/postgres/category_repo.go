package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CategoryRepo struct{ db DB }

func NewCategoryRepo(db DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `
SELECT id, name, slug
FROM categories
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
SELECT id, name, slug
FROM categories
WHERE id = $1
LIMIT 1`
	var c entity.Category
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &c, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query, category.Name, category.Slug).
		Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

type DepartmentRepo struct{ db DB }

func NewDepartmentRepo(db DB) repository.DepartmentRepository {
	return &DepartmentRepo{db: db}
}

func (repo *DepartmentRepo) List(ctx context.Context) ([]*entity.Department, error) {
	const query = `
SELECT id, name, slug
FROM departments
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	departments := make([]*entity.Department, 0, 8)
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Slug); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		departments = append(departments, &d)
	}
	return departments, rows.Err()
}

func (repo *DepartmentRepo) Get(ctx context.Context, id int64) (*entity.Department, error) {
	const query = `
SELECT id, name, slug
FROM departments
WHERE id = $1
LIMIT 1`
	var d entity.Department
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &d, nil
}

func (repo *DepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	const query = `
INSERT INTO departments (name, slug)
VALUES ($1, $2)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query, department.Name, department.Slug).
		Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *DepartmentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM departments WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
