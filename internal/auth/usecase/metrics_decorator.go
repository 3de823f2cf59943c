package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	"github.com/allisson/accounts/internal/metrics"
	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	email, password string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := s.next.Login(ctx, email, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "auth", "login", status)
	s.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return pair, err
}

// Refresh records metrics for token refresh operations.
func (s *sessionUseCaseWithMetrics) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := s.next.Refresh(ctx, refreshToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "auth", "refresh", status)
	s.metrics.RecordDuration(ctx, "auth", "refresh", time.Since(start), status)

	return pair, err
}

// Authenticate records metrics for access token authentication operations.
func (s *sessionUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	accessToken string,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := s.next.Authenticate(ctx, accessToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	s.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return user, err
}

// CleanExpiredBlacklist records metrics for blacklist cleanup operations.
func (s *sessionUseCaseWithMetrics) CleanExpiredBlacklist(ctx context.Context, days int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := s.next.CleanExpiredBlacklist(ctx, days, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "auth", "blacklist_clean", status)
	s.metrics.RecordDuration(ctx, "auth", "blacklist_clean", time.Since(start), status)

	return count, err
}
