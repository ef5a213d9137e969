package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeExists = errors.New("employee already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// InternalEmployee models a member of the recruiting staff, the only
// authenticated actor in the system.
type InternalEmployee struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
