package usecase

import (
	"context"
	"errors"
	"time"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	authService "github.com/allisson/accounts/internal/auth/service"
	userDomain "github.com/allisson/accounts/internal/user/domain"
	userUsecase "github.com/allisson/accounts/internal/user/usecase"
)

// sessionUseCase implements SessionUseCase for cookie-based JWT sessions.
type sessionUseCase struct {
	tokenCodec     authService.TokenCodec
	blacklistRepo  BlacklistRepository
	userRepo       userUsecase.UserRepository
	authenticators []Authenticator
}

// Login verifies credentials against the configured authenticators and issues
// a fresh token pair. Authenticators are tried in order; the first success
// wins. Any non-credential error aborts the chain.
func (s *sessionUseCase) Login(ctx context.Context, email, password string) (*authDomain.TokenPair, error) {
	var user *userDomain.User

	for _, authenticator := range s.authenticators {
		candidate, err := authenticator.Authenticate(ctx, email, password)
		if err != nil {
			if errors.Is(err, authDomain.ErrInvalidCredentials) {
				continue
			}
			return nil, err
		}
		user = candidate
		break
	}

	if user == nil {
		return nil, authDomain.ErrInvalidCredentials
	}

	return s.tokenCodec.IssuePair(user.ID)
}

// Refresh consumes a refresh token and issues a fresh pair.
//
// This method:
// 1. Verifies the token signature and structure
// 2. Rejects non-refresh and expired tokens
// 3. Rejects token IDs already on the blacklist
// 4. Verifies the subject is still an active user
// 5. Blacklists the token ID; losing the insert race means a concurrent
//    refresh consumed the token first
// 6. Issues a new pair
//
// The read in step 3 is a cheap early exit; the atomic insert in step 5 is
// the authoritative single-use guard, so two concurrent refreshes with the
// same token cannot both succeed.
func (s *sessionUseCase) Refresh(ctx context.Context, refreshToken string) (*authDomain.TokenPair, error) {
	claims, err := s.tokenCodec.Decode(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != authDomain.RefreshToken {
		return nil, authDomain.ErrInvalidToken
	}

	if claims.IsExpired(time.Now().UTC()) {
		return nil, authDomain.ErrTokenExpired
	}

	blacklisted, err := s.blacklistRepo.IsBlacklisted(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, authDomain.ErrTokenBlacklisted
	}

	user, err := s.userRepo.Get(ctx, claims.UserID)
	if err != nil {
		// Deleted subject reads as bad credentials at the boundary; the
		// not-found cause stays in the chain for the logs. The token is not
		// consumed.
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, errors.Join(authDomain.ErrInvalidCredentials, err)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrInvalidCredentials
	}

	inserted, err := s.blacklistRepo.Insert(ctx, &authDomain.BlacklistEntry{
		TokenID:   claims.TokenID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, authDomain.ErrTokenBlacklisted
	}

	return s.tokenCodec.IssuePair(user.ID)
}

// Authenticate validates an access token and resolves it to an active user.
// Refresh tokens are not accepted here.
func (s *sessionUseCase) Authenticate(ctx context.Context, accessToken string) (*userDomain.User, error) {
	claims, err := s.tokenCodec.Decode(accessToken)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != authDomain.AccessToken {
		return nil, authDomain.ErrInvalidToken
	}

	if claims.IsExpired(time.Now().UTC()) {
		return nil, authDomain.ErrTokenExpired
	}

	user, err := s.userRepo.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, errors.Join(authDomain.ErrInvalidToken, err)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrInvalidCredentials
	}

	return user, nil
}

// CleanExpiredBlacklist purges blacklist entries whose tokens expired more
// than the given number of days ago. Entries for expired tokens are dead
// weight: the expiry check rejects those tokens before the blacklist is ever
// consulted. When dryRun is true, the count is returned without deletion.
func (s *sessionUseCase) CleanExpiredBlacklist(ctx context.Context, days int, dryRun bool) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.blacklistRepo.DeleteExpired(ctx, cutoff, dryRun)
}

// NewSessionUseCase creates a new SessionUseCase with the provided dependencies.
func NewSessionUseCase(
	tokenCodec authService.TokenCodec,
	blacklistRepo BlacklistRepository,
	userRepo userUsecase.UserRepository,
	authenticators ...Authenticator,
) SessionUseCase {
	return &sessionUseCase{
		tokenCodec:     tokenCodec,
		blacklistRepo:  blacklistRepo,
		userRepo:       userRepo,
		authenticators: authenticators,
	}
}
