// Package domain defines the user account domain model.
//
// Users authenticate with email and password. Passwords are stored as Argon2id
// hashes, never in plain text.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID // Unique identifier (UUIDv7)
	Username     string
	Email        string
	FirstName    string
	LastName     string
	AvatarURL    string
	PasswordHash string //nolint:gosec // Argon2id hash (not plaintext)
	IsActive     bool   // Whether the user can authenticate
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserInput holds the fields required to register a new user.
// Password is the plain text password; it is hashed before persistence.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	AvatarURL string
}

// UpdateUserInput holds the mutable profile fields of a user. Nil fields are
// left unchanged, so callers can submit partial updates.
// Email, password, and active status are not changed via profile updates.
type UpdateUserInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}
