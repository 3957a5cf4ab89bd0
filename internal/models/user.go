package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the privilege tier of a user. Roles form a total order:
// STAFF < ADMIN < MASTER.
type Role string

const (
	RoleStaff  Role = "STAFF"
	RoleAdmin  Role = "ADMIN"
	RoleMaster Role = "MASTER"
)

// roleRank maps each role to its position in the privilege order.
var roleRank = map[Role]int{
	RoleStaff:  1,
	RoleAdmin:  2,
	RoleMaster: 3,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
// Unknown roles never satisfy any minimum.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	return rr >= roleRank[min]
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest is used for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is used for session creation
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateRoleRequest is used for role promotion
type UpdateRoleRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
