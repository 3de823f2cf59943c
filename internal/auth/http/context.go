// Package http provides HTTP handlers and middleware for session authentication.
package http

import (
	"context"

	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// userKey is a context key type for storing authenticated users.
type userKey struct{}

// WithUser stores an authenticated user in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithUser(ctx context.Context, user *userDomain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser retrieves an authenticated user from the context.
// Returns (user, true) if a user is present, or (nil, false) if no user was set.
// This is typically called by handlers that need the authenticated user.
func GetUser(ctx context.Context) (*userDomain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*userDomain.User)
	return user, ok
}
