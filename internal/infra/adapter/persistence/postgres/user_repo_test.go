package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/repository"
)

var userCols = []string{
	"id", "email", "password", "name", "role",
	"department_id", "created_at", "updated_at",
}

func userRow(u *entity.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userCols)
	var dept interface{}
	if u.DepartmentID != nil {
		dept = *u.DepartmentID
	}
	return rows.AddRow(
		u.ID, u.Email, u.Password, u.Name, u.Role,
		dept, u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	deptID := int64(2)
	want := &entity.User{
		ID: 1, Email: "reporter@newsdesk.local", Password: "s3cret",
		Name: "Robin Vale", Role: entity.RoleEditor,
		DepartmentID: &deptID, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(1)).
		WillReturnRows(userRow(want))

	repo := postgres.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password", "name", "role",
			"department_id", "created_at", "updated_at",
		}))

	repo := postgres.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get expected nil for missing user, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	want := &entity.User{
		ID: 3, Email: "desk@newsdesk.local", Password: "pw",
		Name: "Desk Editor", Role: entity.RoleAdmin,
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(`FROM users`).
		WithArgs("desk@newsdesk.local").
		WillReturnRows(userRow(want))

	repo := postgres.NewUserRepo(db)
	got, err := repo.GetByEmail(context.Background(), "desk@newsdesk.local")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "email", "password", "name", "role",
		"department_id", "created_at", "updated_at",
	}).
		AddRow(1, "a@newsdesk.local", "pw", "A", entity.RoleAdmin, nil, now, now).
		AddRow(2, "b@newsdesk.local", "pw", "B", entity.RoleEditor, int64(1), now, now)

	mock.ExpectQuery(`FROM users`).WillReturnRows(rows)

	repo := postgres.NewUserRepo(db)
	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(users) != 2 {
		t.Fatalf("List expected 2 users, got %d", len(users))
	}
	if users[0].DepartmentID != nil {
		t.Fatal("List expected nil department for first user")
	}
	if users[1].DepartmentID == nil || *users[1].DepartmentID != 1 {
		t.Fatal("List expected department 1 for second user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Create_DefaultsRole(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("new@newsdesk.local", "pw", "New Hire", entity.RoleEditor, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	repo := postgres.NewUserRepo(db)
	u := &entity.User{Email: "new@newsdesk.local", Password: "pw", Name: "New Hire"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.ID != 7 {
		t.Fatalf("Create expected id 7, got %d", u.ID)
	}
	if u.Role != entity.RoleEditor {
		t.Fatalf("Create expected default role %q, got %q", entity.RoleEditor, u.Role)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Update_PatchMergesInStore(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`UPDATE users`).
		WithArgs(nil, nil, "Renamed", nil, nil, int64(3)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(3), "keep@newsdesk.local", "pw", "Renamed",
				entity.RoleEditor, nil, now, now))

	repo := postgres.NewUserRepo(db)
	name := "Renamed"
	u, err := repo.Update(context.Background(), 3, repository.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if u.Name != "Renamed" || u.Email != "keep@newsdesk.local" {
		t.Fatalf("Update returned name %q email %q", u.Name, u.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// Two creates racing for the same email both pass the service's
// pre-check; the schema's UNIQUE rejects the loser and the repository
// surfaces it as ErrDuplicate rather than a raw driver error.
func TestUserRepo_Create_UniqueViolation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("dup@newsdesk.local", "pw", "Dup", entity.RoleEditor, nil).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := postgres.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{
		Email: "dup@newsdesk.local", Password: "pw", Name: "Dup", Role: entity.RoleEditor,
	})
	if !errors.Is(err, entity.ErrDuplicate) {
		t.Fatalf("Create err=%v, want ErrDuplicate", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`UPDATE users`).
		WithArgs(nil, nil, "X", nil, nil, int64(999)).
		WillReturnRows(sqlmock.NewRows(userCols))

	repo := postgres.NewUserRepo(db)
	name := "X"
	_, err := repo.Update(context.Background(), 999, repository.UserPatch{Name: &name})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewUserRepo(db)
	if err := repo.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
