package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpMocks "github.com/allisson/accounts/internal/auth/http/mocks"
)

func TestRunCleanBlacklist(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &httpMocks.MockSessionUseCase{}
		mockUseCase.On("CleanExpiredBlacklist", ctx, 0, false).Return(int64(100), nil)

		var out bytes.Buffer
		err := RunCleanBlacklist(ctx, mockUseCase, logger, &out, 0, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 100 blacklist")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &httpMocks.MockSessionUseCase{}
		mockUseCase.On("CleanExpiredBlacklist", ctx, 7, false).Return(int64(50), nil)

		var out bytes.Buffer
		err := RunCleanBlacklist(ctx, mockUseCase, logger, &out, 7, false, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 50`)
		require.Contains(t, out.String(), `"days": 7`)
		require.Contains(t, out.String(), `"dry_run": false`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("dry-run", func(t *testing.T) {
		mockUseCase := &httpMocks.MockSessionUseCase{}
		mockUseCase.On("CleanExpiredBlacklist", ctx, 30, true).Return(int64(12), nil)

		var out bytes.Buffer
		err := RunCleanBlacklist(ctx, mockUseCase, logger, &out, 30, true, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Dry-run mode: Would delete 12 blacklist")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("negative-days", func(t *testing.T) {
		mockUseCase := &httpMocks.MockSessionUseCase{}

		var out bytes.Buffer
		err := RunCleanBlacklist(ctx, mockUseCase, logger, &out, -1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
		mockUseCase.AssertNotCalled(t, "CleanExpiredBlacklist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &httpMocks.MockSessionUseCase{}
		mockUseCase.On("CleanExpiredBlacklist", mock.Anything, 0, false).
			Return(int64(0), context.DeadlineExceeded)

		var out bytes.Buffer
		err := RunCleanBlacklist(ctx, mockUseCase, logger, &out, 0, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to clean expired blacklist entries")
		require.Empty(t, out.String())
	})
}
