package domain

import (
	"github.com/allisson/accounts/internal/errors"
)

// Authentication errors.
//
// Token failures all wrap ErrUnauthorized so the HTTP layer maps them to a
// single 401 with a generic body; the specific sentinel is only used for
// logging and tests.
var (
	// ErrInvalidCredentials indicates the email or password did not match an active user.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates a token that is malformed, has a bad signature,
	// or carries the wrong token type.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrTokenExpired indicates a structurally valid token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenBlacklisted indicates a refresh token that was already consumed or revoked.
	ErrTokenBlacklisted = errors.Wrap(errors.ErrUnauthorized, "token blacklisted")

	// ErrMissingToken indicates the expected token cookie was absent from the request.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing token")
)
