package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/accounts/internal/metrics"
	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for user registration operations.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	createUserInput *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, createUserInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "register", status)
	u.metrics.RecordDuration(ctx, "user", "register", time.Since(start), status)

	return user, err
}

// Get records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "get", status)
	u.metrics.RecordDuration(ctx, "user", "get", time.Since(start), status)

	return user, err
}

// UpdateProfile records metrics for profile update operations.
func (u *userUseCaseWithMetrics) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	updateUserInput *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateProfile(ctx, userID, updateUserInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "update_profile", status)
	u.metrics.RecordDuration(ctx, "user", "update_profile", time.Since(start), status)

	return user, err
}

// Delete records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, userID uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "delete", status)
	u.metrics.RecordDuration(ctx, "user", "delete", time.Since(start), status)

	return err
}
