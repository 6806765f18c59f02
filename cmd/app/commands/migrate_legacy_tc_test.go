package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidMocks "github.com/dernekportal/tcguard/internal/nationalid/http/mocks"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

const operatorEmail = "admin@example.com"

// operatorContext matches a context carrying the operator identity.
func operatorContext() any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		identity, ok := requestcontext.IdentityFrom(ctx)
		return ok && identity.TokenIdentifier == operatorEmail
	})
}

func newMigrationReport(dryRun bool) *nationalidDomain.MigrationReport {
	return &nationalidDomain.MigrationReport{
		DryRun: dryRun,
		Collections: []nationalidDomain.CollectionMigrationReport{
			{Collection: "beneficiaries", Scanned: 5, Migrated: 3, Conflicts: 1, Invalid: 1},
			{Collection: "dependents", Scanned: 2, Migrated: 2},
		},
	}
}

func TestRunMigrateLegacyTC(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("Success_Text", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}
		mockUseCase.On("MigrateLegacy", operatorContext(), 500, false).Return(newMigrationReport(false), nil)

		var out bytes.Buffer
		err := RunMigrateLegacyTC(ctx, mockUseCase, logger, &out, operatorEmail, 500, false, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "beneficiaries:")
		assert.Contains(t, out.String(), "Conflicts:  1")
		assert.Contains(t, out.String(), "Migrated 5 record(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_DryRunJSON", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}
		mockUseCase.On("MigrateLegacy", operatorContext(), 100, true).Return(newMigrationReport(true), nil)

		var out bytes.Buffer
		err := RunMigrateLegacyTC(ctx, mockUseCase, logger, &out, operatorEmail, 100, true, "json")
		require.NoError(t, err)

		var result nationalidDomain.MigrationReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.True(t, result.DryRun)
		assert.Equal(t, 5, result.Migrated())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingOperator", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}

		err := RunMigrateLegacyTC(ctx, mockUseCase, logger, &bytes.Buffer{}, "", 500, false, "text")

		require.ErrorContains(t, err, "operator email is required")
		mockUseCase.AssertNotCalled(t, "MigrateLegacy")
	})

	t.Run("Error_InvalidBatchSize", func(t *testing.T) {
		err := RunMigrateLegacyTC(ctx, nil, logger, &bytes.Buffer{}, operatorEmail, 0, false, "text")
		require.ErrorContains(t, err, "batch size must be a positive number")
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		err := RunMigrateLegacyTC(ctx, nil, logger, &bytes.Buffer{}, operatorEmail, 500, false, "csv")
		require.ErrorContains(t, err, "invalid format")
	})

	t.Run("Error_AccessDenied", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}
		mockUseCase.On("MigrateLegacy", operatorContext(), 500, false).
			Return(nil, nationalidDomain.ErrInsufficientPermissions)

		var out bytes.Buffer
		err := RunMigrateLegacyTC(ctx, mockUseCase, logger, &out, operatorEmail, 500, false, "text")

		require.ErrorIs(t, err, nationalidDomain.ErrInsufficientPermissions)
		assert.Empty(t, out.String())
	})
}

func TestRunLegacyTCStatus(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("Success_Pending", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}
		mockUseCase.On("Status", operatorContext()).
			Return(&nationalidDomain.LegacyStatus{Beneficiaries: 4, Dependents: 1}, nil)

		var out bytes.Buffer
		err := RunLegacyTCStatus(ctx, mockUseCase, logger, &out, operatorEmail, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Beneficiaries:  4")
		assert.Contains(t, out.String(), "Status: PENDING")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_CompleteJSON", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}
		mockUseCase.On("Status", operatorContext()).Return(&nationalidDomain.LegacyStatus{}, nil)

		var out bytes.Buffer
		err := RunLegacyTCStatus(ctx, mockUseCase, logger, &out, operatorEmail, "json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, true, result["complete"])
		assert.Equal(t, float64(0), result["beneficiaries"])
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		mockUseCase := &nationalidMocks.MockMigrationUseCase{}
		mockUseCase.On("Status", operatorContext()).Return(nil, nationalidDomain.ErrAuthenticationRequired)

		err := RunLegacyTCStatus(ctx, mockUseCase, logger, &bytes.Buffer{}, operatorEmail, "text")

		require.ErrorIs(t, err, nationalidDomain.ErrAuthenticationRequired)
	})
}
