package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	userUC "newsdesk/internal/usecase/user"
)

// Minimal in-memory UserRepository.
type stubRepo struct {
	data      map[int64]*entity.User
	nextID    int64
	err       error // forces every call to fail when set
	createErr error // forces Create alone to fail when set
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.User{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.User, 0, len(s.data))
	for _, u := range s.data {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = s.nextID
	s.nextID++
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.data[u.ID] = u
	return nil
}

func (s *stubRepo) Update(_ context.Context, id int64, patch repository.UserPatch) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.DepartmentID != nil {
		u.DepartmentID = patch.DepartmentID
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func TestCreate_DefaultsRoleToEditor(t *testing.T) {
	svc := &userUC.Service{Repo: newStub()}

	u, err := svc.Create(context.Background(), userUC.CreateInput{
		Email:    "writer@newsdesk.local",
		Password: "pw",
		Name:     "Writer",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.Role != entity.RoleEditor {
		t.Fatalf("Role=%q, want %q", u.Role, entity.RoleEditor)
	}
}

// When the storage backend itself rejects a duplicate email, such as a
// racing insert losing to a schema constraint, the service reports it
// the same way as its own pre-check.
func TestCreate_StorageDuplicateMapsToEmailTaken(t *testing.T) {
	repo := newStub()
	repo.createErr = entity.ErrDuplicate
	svc := &userUC.Service{Repo: repo}

	_, err := svc.Create(context.Background(), userUC.CreateInput{
		Email: "race@newsdesk.local", Password: "pw", Name: "Race",
	})
	if !errors.Is(err, userUC.ErrEmailTaken) {
		t.Fatalf("err=%v, want ErrEmailTaken", err)
	}
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	svc := &userUC.Service{Repo: newStub()}
	in := userUC.CreateInput{Email: "dup@newsdesk.local", Password: "pw", Name: "First"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	in.Name = "Second"
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, userUC.ErrEmailTaken) {
		t.Fatalf("err=%v, want ErrEmailTaken", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := &userUC.Service{Repo: newStub()}

	cases := []struct {
		name string
		in   userUC.CreateInput
	}{
		{"bad email", userUC.CreateInput{Email: "not-an-email", Password: "pw", Name: "N"}},
		{"missing password", userUC.CreateInput{Email: "ok@newsdesk.local", Name: "N"}},
		{"missing name", userUC.CreateInput{Email: "ok@newsdesk.local", Password: "pw"}},
		{"unknown role", userUC.CreateInput{Email: "ok@newsdesk.local", Password: "pw", Name: "N", Role: "owner"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc := &userUC.Service{Repo: newStub()}
	created, err := svc.Create(context.Background(), userUC.CreateInput{
		Email:    "writer@newsdesk.local",
		Password: "pw",
		Name:     "Writer",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	newName := "Senior Writer"
	got, err := svc.Update(context.Background(), userUC.UpdateInput{
		ID:   created.ID,
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Name != newName {
		t.Errorf("Name=%q, want %q", got.Name, newName)
	}
	if got.Email != "writer@newsdesk.local" {
		t.Errorf("Email changed on partial update: %q", got.Email)
	}
}

func TestUpdate_EmailConflict(t *testing.T) {
	svc := &userUC.Service{Repo: newStub()}
	if _, err := svc.Create(context.Background(), userUC.CreateInput{
		Email: "a@newsdesk.local", Password: "pw", Name: "A",
	}); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	second, err := svc.Create(context.Background(), userUC.CreateInput{
		Email: "b@newsdesk.local", Password: "pw", Name: "B",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	taken := "a@newsdesk.local"
	_, err = svc.Update(context.Background(), userUC.UpdateInput{ID: second.ID, Email: &taken})
	if !errors.Is(err, userUC.ErrEmailTaken) {
		t.Fatalf("err=%v, want ErrEmailTaken", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := &userUC.Service{Repo: newStub()}

	if _, err := svc.Get(context.Background(), 7); !errors.Is(err, userUC.ErrUserNotFound) {
		t.Errorf("Get(7) err=%v, want ErrUserNotFound", err)
	}
	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, userUC.ErrInvalidUserID) {
		t.Errorf("Get(0) err=%v, want ErrInvalidUserID", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newStub()
	svc := &userUC.Service{Repo: repo}
	created, err := svc.Create(context.Background(), userUC.CreateInput{
		Email: "gone@newsdesk.local", Password: "pw", Name: "Gone",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if len(repo.data) != 0 {
		t.Fatal("user still present after Delete")
	}
}
