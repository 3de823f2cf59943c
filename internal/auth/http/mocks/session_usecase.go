// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// MockSessionUseCase is a mock implementation of SessionUseCase for testing.
type MockSessionUseCase struct {
	mock.Mock
}

// Login mocks the Login method of SessionUseCase.
func (m *MockSessionUseCase) Login(
	ctx context.Context,
	email, password string,
) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

// Refresh mocks the Refresh method of SessionUseCase.
func (m *MockSessionUseCase) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

// Authenticate mocks the Authenticate method of SessionUseCase.
func (m *MockSessionUseCase) Authenticate(
	ctx context.Context,
	accessToken string,
) (*userDomain.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// CleanExpiredBlacklist mocks the CleanExpiredBlacklist method of SessionUseCase.
func (m *MockSessionUseCase) CleanExpiredBlacklist(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
