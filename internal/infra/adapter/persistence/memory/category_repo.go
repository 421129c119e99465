package memory

import (
	"context"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CategoryRepo implements repository.CategoryRepository over the shared store.
type CategoryRepo struct{ s *Store }

// NewCategoryRepo creates a category repository backed by the given store.
func NewCategoryRepo(s *Store) repository.CategoryRepository {
	return &CategoryRepo{s: s}
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	categories := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		categories = append(categories, cloneCategory(c))
	}
	return categories, nil
}

func (r *CategoryRepo) Get(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return cloneCategory(c), nil
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	category.ID = r.s.nextCategoryID
	r.s.nextCategoryID++
	r.s.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.categories, id)
	return nil
}

// DepartmentRepo implements repository.DepartmentRepository over the shared store.
type DepartmentRepo struct{ s *Store }

// NewDepartmentRepo creates a department repository backed by the given store.
func NewDepartmentRepo(s *Store) repository.DepartmentRepository {
	return &DepartmentRepo{s: s}
}

func (r *DepartmentRepo) List(_ context.Context) ([]*entity.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	departments := make([]*entity.Department, 0, len(r.s.departments))
	for _, d := range r.s.departments {
		departments = append(departments, cloneDepartment(d))
	}
	return departments, nil
}

func (r *DepartmentRepo) Get(_ context.Context, id int64) (*entity.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, nil
	}
	return cloneDepartment(d), nil
}

func (r *DepartmentRepo) Create(_ context.Context, department *entity.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	department.ID = r.s.nextDepartmentID
	r.s.nextDepartmentID++
	r.s.departments[department.ID] = cloneDepartment(department)
	return nil
}

func (r *DepartmentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.departments, id)
	return nil
}
