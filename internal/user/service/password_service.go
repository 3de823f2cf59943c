// Package service provides user-related services for password hashing and verification.
// Implements Argon2id hashing for user credentials.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/accounts/internal/errors"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password using Argon2id.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword performs a constant-time comparison between a plain password and its hash.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plain text password using Argon2id.
func (p *passwordService) HashPassword(plainPassword string) (string, error) {
	hashedPassword, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// ComparePassword performs a constant-time comparison between a plain password and its hash.
func (p *passwordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a new PasswordService instance using Argon2id hashing.
// Uses the Interactive policy, tuned for login-path latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
