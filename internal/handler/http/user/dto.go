// Package user exposes the staff account endpoints. All of them are
// admin-only; the authorization middleware enforces that before the
// handlers run.
package user

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO is the wire form of a staff account. The password never leaves
// the server.
type DTO struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
