package model

import (
	"time"

	"github.com/google/uuid"
)

// User role constants
const (
	RoleHospital = "hospital"
	RoleDonor    = "donor"
	RolePatient  = "patient"
)

func ValidRole(r string) bool {
	return r == RoleHospital || r == RoleDonor || r == RolePatient
}

// User represents a portal user profile. Credentials never appear here;
// they live on the directory entry only.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	BloodGroup string    `json:"blood_group,omitempty"`
	City       string    `json:"city,omitempty"`
	Phone      string    `json:"phone,omitempty"`
}

// DirectoryEntry is a user record as stored in the credential directory.
type DirectoryEntry struct {
	User
	PasswordHash string `json:"-"`
}

// Session is an authenticated user with its opaque token.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest represents login parameters. All three fields must match a
// directory entry exactly; callers cannot distinguish which one was wrong.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
	Role     string `json:"role" binding:"required,oneof=hospital donor patient" validate:"required,oneof=hospital donor patient"`
}

// RegisterRequest represents registration parameters
type RegisterRequest struct {
	Name       string `json:"name" binding:"required" validate:"required"`
	Email      string `json:"email" binding:"required,email" validate:"required,email"`
	Password   string `json:"password" binding:"required,min=6" validate:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=hospital donor patient" validate:"required,oneof=hospital donor patient"`
	BloodGroup string `json:"blood_group" validate:"omitempty"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
}
