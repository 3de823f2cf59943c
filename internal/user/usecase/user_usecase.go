// Package usecase implements business logic orchestration for user account operations.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/accounts/internal/database"
	apperrors "github.com/allisson/accounts/internal/errors"
	userDomain "github.com/allisson/accounts/internal/user/domain"
	userService "github.com/allisson/accounts/internal/user/service"
)

// userUseCase implements UserUseCase interface for managing user accounts.
type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService userService.PasswordService
}

// Register creates a new user account with a hashed password.
// Returns ErrUserAlreadyExists if the email or username is already registered.
func (u *userUseCase) Register(
	ctx context.Context,
	createUserInput *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	// Emails are matched case-insensitively, stored lowercase
	email := strings.ToLower(createUserInput.Email)

	var user *userDomain.User

	// The duplicate checks and the insert share one transaction so a
	// concurrent registration cannot slip in between them
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		// Reject duplicates before hashing (hashing is expensive)
		_, err := u.userRepo.GetByEmail(ctx, email)
		if err == nil {
			return userDomain.ErrUserAlreadyExists
		}
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		_, err = u.userRepo.GetByUsername(ctx, createUserInput.Username)
		if err == nil {
			return userDomain.ErrUserAlreadyExists
		}
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		passwordHash, err := u.passwordService.HashPassword(createUserInput.Password)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user = &userDomain.User{
			ID:           uuid.Must(uuid.NewV7()),
			Username:     createUserInput.Username,
			Email:        email,
			FirstName:    createUserInput.FirstName,
			LastName:     createUserInput.LastName,
			AvatarURL:    createUserInput.AvatarURL,
			PasswordHash: passwordHash,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		return u.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID.
// Returns ErrUserNotFound if the user doesn't exist.
func (u *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	return u.userRepo.Get(ctx, userID)
}

// UpdateProfile modifies the mutable profile fields of an existing user.
// Nil input fields are left unchanged; email, password hash, and active
// status are preserved.
func (u *userUseCase) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	updateUserInput *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	var user *userDomain.User

	// The collision check and the write share one transaction
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = u.userRepo.Get(ctx, userID)
		if err != nil {
			return err
		}

		// A changed username must not collide with another account
		if updateUserInput.Username != nil && *updateUserInput.Username != user.Username {
			existing, err := u.userRepo.GetByUsername(ctx, *updateUserInput.Username)
			if err == nil && existing.ID != user.ID {
				return userDomain.ErrUserAlreadyExists
			}
			if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
				return err
			}
		}

		// Apply only the provided fields
		if updateUserInput.Username != nil {
			user.Username = *updateUserInput.Username
		}
		if updateUserInput.FirstName != nil {
			user.FirstName = *updateUserInput.FirstName
		}
		if updateUserInput.LastName != nil {
			user.LastName = *updateUserInput.LastName
		}
		if updateUserInput.AvatarURL != nil {
			user.AvatarURL = *updateUserInput.AvatarURL
		}
		user.UpdatedAt = time.Now().UTC()

		return u.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete permanently removes a user account.
// Returns ErrUserNotFound if the user doesn't exist.
func (u *userUseCase) Delete(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.Delete(ctx, userID)
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService userService.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
