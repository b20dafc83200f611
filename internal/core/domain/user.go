package domain

import (
	"errors"
	"time"
)

const (
	RoleStudent  = "student"
	RoleAdmin    = "admin"
	RoleLecturer = "lecturer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin || role == RoleLecturer
}

// User models an account in the portal. Level is only meaningful for
// students; it names the cohort whose timetable and announcements apply.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"full_name" bson:"full_name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	Level        string    `json:"level,omitempty" bson:"level,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
