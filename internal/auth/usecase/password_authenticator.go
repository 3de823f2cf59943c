// Package usecase implements business logic orchestration for session authentication.
package usecase

import (
	"context"
	"errors"
	"strings"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	userDomain "github.com/allisson/accounts/internal/user/domain"
	userService "github.com/allisson/accounts/internal/user/service"
	userUsecase "github.com/allisson/accounts/internal/user/usecase"
)

// passwordAuthenticator verifies email and password credentials against stored
// Argon2id hashes.
type passwordAuthenticator struct {
	userRepo        userUsecase.UserRepository
	passwordService userService.PasswordService
}

// Authenticate resolves an email and password pair to an active user.
//
// Returns ErrInvalidCredentials for unknown emails, wrong passwords, and
// inactive users alike to prevent account enumeration.
func (p *passwordAuthenticator) Authenticate(
	ctx context.Context,
	email, password string,
) (*userDomain.User, error) {
	// Emails are stored lowercase, match them case-insensitively
	user, err := p.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		// If user not found, return generic error to prevent enumeration
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !p.passwordService.ComparePassword(password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return user, nil
}

// NewPasswordAuthenticator creates an Authenticator backed by stored password hashes.
func NewPasswordAuthenticator(
	userRepo userUsecase.UserRepository,
	passwordService userService.PasswordService,
) Authenticator {
	return &passwordAuthenticator{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
