// Package service provides authentication services for JWT issuance and verification.
package service

import (
	"github.com/google/uuid"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
)

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	// Issue creates a signed token of the given type for the user.
	// Returns the compact token string and its decoded claims.
	Issue(userID uuid.UUID, tokenType authDomain.TokenType) (string, *authDomain.Claims, error)

	// IssuePair creates a fresh access and refresh token for the user.
	IssuePair(userID uuid.UUID) (*authDomain.TokenPair, error)

	// Decode verifies the signature and structure of a token and returns its claims.
	// Expiry is NOT checked here; callers decide between ErrInvalidToken and
	// ErrTokenExpired via Claims.IsExpired. Returns ErrInvalidToken on any
	// signature or structural failure.
	Decode(tokenString string) (*authDomain.Claims, error)
}
