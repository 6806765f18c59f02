// Package usecase implements the guarded identifier operations: access
// resolution, dual-read lookup, hashed writes, the legacy migration and the
// persisted audit trail.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// UserDirectory looks portal users up by email.
type UserDirectory interface {
	// GetByEmail returns an error wrapping ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)
}

// SettingRepository persists system settings.
type SettingRepository interface {
	// Get returns ErrSettingNotFound when the entry does not exist.
	Get(ctx context.Context, category, key string) (*nationalidDomain.Setting, error)

	// Create returns ErrSettingAlreadyExists when the category and key are taken.
	Create(ctx context.Context, setting *nationalidDomain.Setting) error
}

// LegacyIdentifierStore is the part of a record repository used by the
// legacy migration.
type LegacyIdentifierStore interface {
	// ListLegacy returns up to limit records with a plaintext identifier and
	// an id greater than afterID, ordered by id.
	ListLegacy(ctx context.Context, afterID uuid.UUID, limit int) ([]nationalidDomain.LegacyIdentifier, error)

	// CountLegacy returns the number of records with a plaintext identifier.
	CountLegacy(ctx context.Context) (int64, error)

	// ReplaceIdentifier sets the identifier of id to newValue only if it still
	// equals oldValue. It reports whether the row was changed.
	ReplaceIdentifier(ctx context.Context, id uuid.UUID, oldValue, newValue string) (bool, error)

	// IdentifierOwner returns the id of the record whose stored identifier
	// equals value, or an error wrapping ErrNotFound.
	IdentifierOwner(ctx context.Context, value string) (uuid.UUID, error)
}

// BeneficiaryRepository persists beneficiaries.
type BeneficiaryRepository interface {
	LegacyIdentifierStore

	// Create returns ErrDuplicateIdentifier on a unique index violation.
	Create(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error

	// Update writes every column of beneficiary. It returns ErrBeneficiaryNotFound
	// when no row matches and ErrDuplicateIdentifier on a unique index violation.
	Update(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error

	Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error)

	// GetByIdentifier returns the first beneficiary whose stored identifier
	// equals value, or ErrBeneficiaryNotFound.
	GetByIdentifier(ctx context.Context, value string) (*nationalidDomain.Beneficiary, error)

	List(ctx context.Context, offset, limit int) ([]*nationalidDomain.Beneficiary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DependentRepository persists dependents.
type DependentRepository interface {
	LegacyIdentifierStore

	Create(ctx context.Context, dependent *nationalidDomain.Dependent) error
	Update(ctx context.Context, dependent *nationalidDomain.Dependent) error
	Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Dependent, error)
	GetByIdentifier(ctx context.Context, value string) (*nationalidDomain.Dependent, error)
	ListByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*nationalidDomain.Dependent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuditLogRepository persists audit logs.
type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *nationalidDomain.AuditLog) error

	// List returns logs newest first. Nil bounds are open; both are inclusive.
	List(ctx context.Context, offset, limit int, createdAtFrom, createdAtTo *time.Time) ([]*nationalidDomain.AuditLog, error)

	// ListByTimeRange returns every log with start <= created_at <= end, oldest first.
	ListByTimeRange(ctx context.Context, start, end time.Time) ([]*nationalidDomain.AuditLog, error)

	// DeleteOlderThan removes logs created before olderThan, or only counts
	// them when dryRun is true.
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// SessionResolver maps the request identity to a portal user.
type SessionResolver interface {
	// Resolve returns ErrNoIdentity, ErrCallerNotFound, ErrCallerInactive or a
	// wrapped directory error when no active caller can be resolved.
	Resolve(ctx context.Context) (*nationalidDomain.Caller, error)
}

// AccessGuard is the checkpoint in front of every raw identifier operation.
type AccessGuard interface {
	// RequireAccess resolves the caller and checks its role. It returns
	// ErrAuthenticationRequired or ErrInsufficientPermissions.
	RequireAccess(ctx context.Context) (*nationalidDomain.Caller, error)

	// Authorize checks claim's role when an upstream layer already resolved
	// the caller, and falls back to RequireAccess when claim is nil.
	Authorize(ctx context.Context, claim *nationalidDomain.Caller) (*nationalidDomain.Caller, error)
}

// BeneficiaryUseCase manages beneficiaries and their identifiers.
type BeneficiaryUseCase interface {
	Create(
		ctx context.Context,
		input *nationalidDomain.CreateBeneficiaryInput,
		claim *nationalidDomain.Caller,
	) (*nationalidDomain.Beneficiary, error)
	Update(
		ctx context.Context,
		id uuid.UUID,
		input *nationalidDomain.UpdateBeneficiaryInput,
		claim *nationalidDomain.Caller,
	) (*nationalidDomain.Beneficiary, error)
	Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error)
	List(ctx context.Context, offset, limit int) ([]*nationalidDomain.Beneficiary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIdentifier(ctx context.Context, tc string) (*nationalidDomain.Beneficiary, error)
}

// DependentUseCase manages dependents and their optional identifiers.
type DependentUseCase interface {
	Create(
		ctx context.Context,
		input *nationalidDomain.CreateDependentInput,
		claim *nationalidDomain.Caller,
	) (*nationalidDomain.Dependent, error)
	Update(
		ctx context.Context,
		id uuid.UUID,
		input *nationalidDomain.UpdateDependentInput,
		claim *nationalidDomain.Caller,
	) (*nationalidDomain.Dependent, error)
	ListByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*nationalidDomain.Dependent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIdentifier(ctx context.Context, tc string) (*nationalidDomain.Dependent, error)
}

// MigrationUseCase rewrites legacy plaintext identifiers to hashed values.
type MigrationUseCase interface {
	MigrateLegacy(ctx context.Context, batchSize int, dryRun bool) (*nationalidDomain.MigrationReport, error)
	Status(ctx context.Context) (*nationalidDomain.LegacyStatus, error)
}

// AuditLogUseCase persists and inspects the audit trail.
type AuditLogUseCase interface {
	// Record persists entry enriched with the request context.
	Record(ctx context.Context, entry nationalidDomain.AuditEntry) error

	List(ctx context.Context, offset, limit int, createdAtFrom, createdAtTo *time.Time) ([]*nationalidDomain.AuditLog, error)

	// DeleteOlderThan removes logs older than days, or counts them when dryRun is true.
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)

	// VerifyBatch checks the signatures of logs created between start and end.
	VerifyBatch(ctx context.Context, start, end time.Time) (*nationalidDomain.VerificationReport, error)
}

// SaltUseCase provisions the identifier hashing salt.
type SaltUseCase interface {
	// Create stores value as the salt, generating one when value is empty.
	// It returns ErrSaltAlreadyConfigured if a salt exists.
	Create(ctx context.Context, value string, operator *uuid.UUID) (*nationalidDomain.Setting, error)
}
