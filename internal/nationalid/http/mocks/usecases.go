// Package mocks provides testify mocks for the nationalid use cases.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// MockBeneficiaryUseCase is a mock implementation of usecase.BeneficiaryUseCase.
type MockBeneficiaryUseCase struct {
	mock.Mock
}

func (m *MockBeneficiaryUseCase) Create(
	ctx context.Context,
	input *nationalidDomain.CreateBeneficiaryInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, input, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *nationalidDomain.UpdateBeneficiaryInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, id, input, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryUseCase) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBeneficiaryUseCase) FindByIdentifier(
	ctx context.Context,
	tc string,
) (*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Beneficiary), args.Error(1)
}

// MockDependentUseCase is a mock implementation of usecase.DependentUseCase.
type MockDependentUseCase struct {
	mock.Mock
}

func (m *MockDependentUseCase) Create(
	ctx context.Context,
	input *nationalidDomain.CreateDependentInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, input, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Dependent), args.Error(1)
}

func (m *MockDependentUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *nationalidDomain.UpdateDependentInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, id, input, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Dependent), args.Error(1)
}

func (m *MockDependentUseCase) ListByBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
) ([]*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nationalidDomain.Dependent), args.Error(1)
}

func (m *MockDependentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDependentUseCase) FindByIdentifier(ctx context.Context, tc string) (*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Dependent), args.Error(1)
}

// MockAuditLogUseCase is a mock implementation of usecase.AuditLogUseCase.
type MockAuditLogUseCase struct {
	mock.Mock
}

func (m *MockAuditLogUseCase) Record(ctx context.Context, entry nationalidDomain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogUseCase) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*nationalidDomain.AuditLog, error) {
	args := m.Called(ctx, offset, limit, createdAtFrom, createdAtTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nationalidDomain.AuditLog), args.Error(1)
}

func (m *MockAuditLogUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuditLogUseCase) VerifyBatch(
	ctx context.Context,
	start, end time.Time,
) (*nationalidDomain.VerificationReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.VerificationReport), args.Error(1)
}

// MockMigrationUseCase is a mock implementation of usecase.MigrationUseCase.
type MockMigrationUseCase struct {
	mock.Mock
}

func (m *MockMigrationUseCase) MigrateLegacy(
	ctx context.Context,
	batchSize int,
	dryRun bool,
) (*nationalidDomain.MigrationReport, error) {
	args := m.Called(ctx, batchSize, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.MigrationReport), args.Error(1)
}

func (m *MockMigrationUseCase) Status(ctx context.Context) (*nationalidDomain.LegacyStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.LegacyStatus), args.Error(1)
}

// MockSaltUseCase is a mock implementation of usecase.SaltUseCase.
type MockSaltUseCase struct {
	mock.Mock
}

func (m *MockSaltUseCase) Create(
	ctx context.Context,
	value string,
	operator *uuid.UUID,
) (*nationalidDomain.Setting, error) {
	args := m.Called(ctx, value, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Setting), args.Error(1)
}

// MockAccessGuard is a mock implementation of usecase.AccessGuard.
type MockAccessGuard struct {
	mock.Mock
}

func (m *MockAccessGuard) RequireAccess(ctx context.Context) (*nationalidDomain.Caller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Caller), args.Error(1)
}

func (m *MockAccessGuard) Authorize(
	ctx context.Context,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Caller, error) {
	args := m.Called(ctx, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Caller), args.Error(1)
}
