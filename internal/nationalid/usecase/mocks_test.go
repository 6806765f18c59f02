package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
)

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

type mockSessionResolver struct {
	mock.Mock
}

func (m *mockSessionResolver) Resolve(ctx context.Context) (*nationalidDomain.Caller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Caller), args.Error(1)
}

type mockAccessGuard struct {
	mock.Mock
}

func (m *mockAccessGuard) RequireAccess(ctx context.Context) (*nationalidDomain.Caller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Caller), args.Error(1)
}

func (m *mockAccessGuard) Authorize(
	ctx context.Context,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Caller, error) {
	args := m.Called(ctx, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Caller), args.Error(1)
}

type mockAuditLogger struct {
	mock.Mock
}

func (m *mockAuditLogger) Log(ctx context.Context, entry nationalidDomain.AuditEntry) {
	m.Called(ctx, entry)
}

// fixedSalt is a SaltProvider that always returns the same salt.
type fixedSalt string

func (f fixedSalt) Salt(ctx context.Context) (string, nationalidService.SaltSource) {
	return string(f), nationalidService.SaltSourceConfigured
}

type mockLegacyStore struct {
	mock.Mock
}

func (m *mockLegacyStore) ListLegacy(
	ctx context.Context,
	afterID uuid.UUID,
	limit int,
) ([]nationalidDomain.LegacyIdentifier, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nationalidDomain.LegacyIdentifier), args.Error(1)
}

func (m *mockLegacyStore) CountLegacy(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLegacyStore) ReplaceIdentifier(ctx context.Context, id uuid.UUID, oldValue, newValue string) (bool, error) {
	args := m.Called(ctx, id, oldValue, newValue)
	return args.Bool(0), args.Error(1)
}

func (m *mockLegacyStore) IdentifierOwner(ctx context.Context, value string) (uuid.UUID, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockBeneficiaryRepository struct {
	mockLegacyStore
}

func (m *mockBeneficiaryRepository) Create(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *mockBeneficiaryRepository) Update(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *mockBeneficiaryRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *mockBeneficiaryRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *mockBeneficiaryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*nationalidDomain.Beneficiary, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nationalidDomain.Beneficiary), args.Error(1)
}

func (m *mockBeneficiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDependentRepository struct {
	mockLegacyStore
}

func (m *mockDependentRepository) Create(ctx context.Context, dependent *nationalidDomain.Dependent) error {
	args := m.Called(ctx, dependent)
	return args.Error(0)
}

func (m *mockDependentRepository) Update(ctx context.Context, dependent *nationalidDomain.Dependent) error {
	args := m.Called(ctx, dependent)
	return args.Error(0)
}

func (m *mockDependentRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Dependent), args.Error(1)
}

func (m *mockDependentRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Dependent), args.Error(1)
}

func (m *mockDependentRepository) ListByBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
) ([]*nationalidDomain.Dependent, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nationalidDomain.Dependent), args.Error(1)
}

func (m *mockDependentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(ctx context.Context, auditLog *nationalidDomain.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func (m *mockAuditLogRepository) List(
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

func (m *mockAuditLogRepository) ListByTimeRange(
	ctx context.Context,
	start, end time.Time,
) ([]*nationalidDomain.AuditLog, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nationalidDomain.AuditLog), args.Error(1)
}

func (m *mockAuditLogRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	args := m.Called(ctx, olderThan, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

type mockSettingRepository struct {
	mock.Mock
}

func (m *mockSettingRepository) Get(ctx context.Context, category, key string) (*nationalidDomain.Setting, error) {
	args := m.Called(ctx, category, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nationalidDomain.Setting), args.Error(1)
}

func (m *mockSettingRepository) Create(ctx context.Context, setting *nationalidDomain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

type mockSaltGenerator struct {
	mock.Mock
}

func (m *mockSaltGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}
