package domain

import (
	"strconv"
	"time"
)

// Role separates citizens from desk staff.
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User is an account of any role.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Phone        *string
	Address      *string
	Department   *Department
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProjection is the public view of a user; it never carries the password.
type UserProjection struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       Role        `json:"role"`
	Department *Department `json:"department,omitempty"`
}

// Projection strips credentials from the user.
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
	}
}

// EmployeeRef is the string form of a user id stored in desk ticket
// assignedTo and viewedBy fields.
func EmployeeRef(id int64) string {
	return strconv.FormatInt(id, 10)
}
