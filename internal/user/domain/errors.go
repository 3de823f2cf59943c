package domain

import (
	"github.com/allisson/accounts/internal/errors"
)

// User domain errors.
var (
	// ErrUserNotFound indicates a user with the specified ID or email was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email or username already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
