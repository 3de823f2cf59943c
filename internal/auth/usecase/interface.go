// Package usecase defines business logic interfaces for session authentication operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// BlacklistRepository defines persistence operations for consumed refresh tokens.
// Implementations must support transaction-aware operations via context propagation.
type BlacklistRepository interface {
	// Insert records a consumed refresh token. The insert must be atomic with
	// the existence check: it returns true only if the entry was newly created,
	// false if the token ID was already blacklisted.
	Insert(ctx context.Context, entry *authDomain.BlacklistEntry) (bool, error)

	// IsBlacklisted reports whether the token ID has already been consumed.
	IsBlacklisted(ctx context.Context, tokenID uuid.UUID) (bool, error)

	// DeleteExpired removes entries whose tokens expired before the given time.
	// When dryRun is true, returns the count without deleting anything.
	DeleteExpired(ctx context.Context, before time.Time, dryRun bool) (int64, error)
}

// Authenticator verifies a credential pair and resolves it to a user.
//
// Implementations form a strategy list tried in order by the session use case;
// the first one to succeed wins. This keeps the login flow open to additional
// credential types (API keys, one-time codes) without touching session logic.
type Authenticator interface {
	// Authenticate resolves the credentials to an active user.
	// Returns ErrInvalidCredentials if the credentials don't match an active user.
	Authenticate(ctx context.Context, email, password string) (*userDomain.User, error)
}

// SessionUseCase defines business logic operations for cookie-based JWT sessions.
type SessionUseCase interface {
	// Login verifies credentials and issues a fresh token pair.
	// Returns ErrInvalidCredentials if no authenticator accepts the credentials.
	Login(ctx context.Context, email, password string) (*authDomain.TokenPair, error)

	// Refresh consumes a refresh token and issues a fresh token pair.
	// The presented token is blacklisted before the new pair is issued, so a
	// token can be redeemed at most once. Returns ErrInvalidToken,
	// ErrTokenExpired, or ErrTokenBlacklisted on failure.
	Refresh(ctx context.Context, refreshToken string) (*authDomain.TokenPair, error)

	// Authenticate validates an access token and resolves it to a user.
	// Returns ErrInvalidToken or ErrTokenExpired on failure.
	Authenticate(ctx context.Context, accessToken string) (*userDomain.User, error)

	// CleanExpiredBlacklist purges blacklist entries for tokens that expired
	// more than the given number of days ago. A zero days value purges
	// everything already expired. When dryRun is true, returns the count
	// without deleting anything.
	CleanExpiredBlacklist(ctx context.Context, days int, dryRun bool) (int64, error)
}
