// Package usecase defines business logic interfaces for user account operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user in the repository.
	Create(ctx context.Context, user *userDomain.User) error

	// Update modifies an existing user in the repository.
	Update(ctx context.Context, user *userDomain.User) error

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)

	// Delete removes a user by ID. Returns ErrUserNotFound if not found.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserUseCase defines business logic operations for managing user accounts.
type UserUseCase interface {
	// Register creates a new user account with an Argon2id hashed password.
	// Returns ErrUserAlreadyExists if the email is already registered.
	Register(ctx context.Context, createUserInput *userDomain.CreateUserInput) (*userDomain.User, error)

	// Get retrieves a user by ID. Returns ErrUserNotFound if the user doesn't exist.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// UpdateProfile modifies the mutable profile fields of an existing user.
	// Email, password, and active status remain unchanged.
	// Returns ErrUserNotFound if the user doesn't exist.
	UpdateProfile(ctx context.Context, userID uuid.UUID, updateUserInput *userDomain.UpdateUserInput) (*userDomain.User, error)

	// Delete permanently removes a user account.
	// Returns ErrUserNotFound if the user doesn't exist.
	Delete(ctx context.Context, userID uuid.UUID) error
}
