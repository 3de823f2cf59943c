// Package domain defines authentication domain models for JWT session management.
//
// Sessions are carried by a pair of signed tokens: a short-lived access token
// used to authenticate requests and a long-lived refresh token used to obtain
// a new pair. Refresh tokens are single-use; once consumed they are recorded
// in a blacklist keyed by token ID.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenType discriminates access tokens from refresh tokens.
// A token of one type is never accepted where the other is required.
type TokenType string

const (
	// AccessToken authenticates API requests.
	AccessToken TokenType = "access"

	// RefreshToken obtains a new token pair.
	RefreshToken TokenType = "refresh"
)

// Claims is the payload carried by a signed token.
type Claims struct {
	UserID    uuid.UUID // Subject of the token
	TokenType TokenType
	TokenID   uuid.UUID // Unique token identifier (UUIDv7), blacklist key
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the token expiry is in the past relative to now.
func (c *Claims) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// TokenPair holds a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// BlacklistEntry records a consumed or revoked refresh token.
// ExpiresAt mirrors the token expiry so entries can be purged once the
// token would have expired anyway.
type BlacklistEntry struct {
	TokenID   uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}
