package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type UserRepo struct{ db DB }

func NewUserRepo(db DB) repository.UserRepository {
	return &UserRepo{db: db}
}

const userColumns = `id, email, password, name, role, department_id, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*entity.User, error) {
	var u entity.User
	var dept sql.NullInt64
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role,
		&dept, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if dept.Valid {
		u.DepartmentID = &dept.Int64
	}
	return &u, nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
LIMIT 1`
	u, err := scanUser(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return u, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1`
	u, err := scanUser(repo.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return u, nil
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.Role == "" {
		user.Role = entity.RoleEditor
	}
	const query = `
INSERT INTO users (email, password, name, role, department_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		user.Email, user.Password, user.Name, user.Role, user.DepartmentID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	// The service checks the email before inserting, but two racing
	// creates can both pass that check; the schema's UNIQUE then rejects
	// the loser here.
	if isUniqueViolation(err) {
		return entity.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) Update(ctx context.Context, id int64, patch repository.UserPatch) (*entity.User, error) {
	// COALESCE merges the patch inside the UPDATE itself, so concurrent
	// partial updates on the same account cannot erase each other.
	const query = `
UPDATE users
SET email = COALESCE($1, email),
	password = COALESCE($2, password),
	name = COALESCE($3, name),
	role = COALESCE($4, role),
	department_id = COALESCE($5, department_id),
	updated_at = now()
WHERE id = $6
RETURNING ` + userColumns
	u, err := scanUser(repo.db.QueryRowContext(ctx, query,
		patch.Email, patch.Password, patch.Name, patch.Role, patch.DepartmentID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if isUniqueViolation(err) {
		return nil, entity.ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return u, nil
}

func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
