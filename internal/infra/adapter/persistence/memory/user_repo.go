package memory

import (
	"context"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// UserRepo implements repository.UserRepository over the shared store.
type UserRepo struct{ s *Store }

// NewUserRepo creates a user repository backed by the given store.
func NewUserRepo(s *Store) repository.UserRepository {
	return &UserRepo{s: s}
}

func (r *UserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// GetByEmail is a linear scan with exact matching.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	if user.Role == "" {
		user.Role = entity.RoleEditor
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// Update merges the patch over the stored record under the store mutex
// and returns the result.
func (r *UserRepo) Update(_ context.Context, id int64, patch repository.UserPatch) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Email != nil {
		stored.Email = *patch.Email
	}
	if patch.Password != nil {
		stored.Password = *patch.Password
	}
	if patch.Name != nil {
		stored.Name = *patch.Name
	}
	if patch.Role != nil {
		stored.Role = *patch.Role
	}
	if patch.DepartmentID != nil {
		v := *patch.DepartmentID
		stored.DepartmentID = &v
	}
	stored.UpdatedAt = r.s.now()
	return cloneUser(stored), nil
}

// Delete removes the user only. Articles authored by the user stay in
// the store and drop out of enriched views instead.
func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.users, id)
	return nil
}
