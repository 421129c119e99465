package entity

import "time"

// User roles. Admins manage the whole newsroom; editors manage articles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User represents a staff member of the newsroom.
// The password is stored as given; comparison happens in the auth service
// so a hashing scheme can be introduced in one place.
type User struct {
	ID           int64
	Email        string
	Password     string
	Name         string
	Role         string
	DepartmentID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the user's role against the known set.
// An empty role is treated as editor (the creation default).
func (u *User) Validate() error {
	if u.Role == "" {
		u.Role = RoleEditor
	}
	if u.Role != RoleAdmin && u.Role != RoleEditor {
		return &ValidationError{Field: "role", Message: "must be admin or editor"}
	}
	return nil
}
