package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	nationalidMocks "github.com/dernekportal/tcguard/internal/nationalid/http/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCleanAuditLogs(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	days := 30

	t.Run("Success_TextOutput", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockAuditLogUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, false).Return(int64(100), nil)

		var out bytes.Buffer
		err := RunCleanAuditLogs(ctx, mockUseCase, logger, &out, days, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 100 audit log(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_DryRunJSON", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockAuditLogUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, true).Return(int64(50), nil)

		var out bytes.Buffer
		err := RunCleanAuditLogs(ctx, mockUseCase, logger, &out, days, true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 50`)
		require.Contains(t, out.String(), `"dry_run": true`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidDays", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockAuditLogUseCase{}
		err := RunCleanAuditLogs(ctx, mockUseCase, logger, &bytes.Buffer{}, -1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
		mockUseCase.AssertNotCalled(t, "DeleteOlderThan")
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockAuditLogUseCase{}
		mockUseCase.On("DeleteOlderThan", ctx, days, false).Return(int64(0), errors.New("db down"))

		err := RunCleanAuditLogs(ctx, mockUseCase, logger, &bytes.Buffer{}, days, false, "text")

		require.ErrorContains(t, err, "failed to delete audit logs: db down")
	})
}
