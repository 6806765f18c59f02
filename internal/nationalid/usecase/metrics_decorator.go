package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dernekportal/tcguard/internal/metrics"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

const metricsDomain = "nationalid"

type recorder struct {
	metrics metrics.BusinessMetrics
}

func (r recorder) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	r.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	r.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

type beneficiaryUseCaseWithMetrics struct {
	recorder
	next BeneficiaryUseCase
}

// NewBeneficiaryUseCaseWithMetrics wraps a BeneficiaryUseCase with metrics recording.
func NewBeneficiaryUseCaseWithMetrics(useCase BeneficiaryUseCase, m metrics.BusinessMetrics) BeneficiaryUseCase {
	return &beneficiaryUseCaseWithMetrics{recorder: recorder{metrics: m}, next: useCase}
}

func (b *beneficiaryUseCaseWithMetrics) Create(
	ctx context.Context,
	input *nationalidDomain.CreateBeneficiaryInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Beneficiary, error) {
	start := time.Now()
	beneficiary, err := b.next.Create(ctx, input, claim)
	b.record(ctx, "beneficiary_create", start, err)
	return beneficiary, err
}

func (b *beneficiaryUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *nationalidDomain.UpdateBeneficiaryInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Beneficiary, error) {
	start := time.Now()
	beneficiary, err := b.next.Update(ctx, id, input, claim)
	b.record(ctx, "beneficiary_update", start, err)
	return beneficiary, err
}

func (b *beneficiaryUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	start := time.Now()
	beneficiary, err := b.next.Get(ctx, id)
	b.record(ctx, "beneficiary_get", start, err)
	return beneficiary, err
}

func (b *beneficiaryUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*nationalidDomain.Beneficiary, error) {
	start := time.Now()
	beneficiaries, err := b.next.List(ctx, offset, limit)
	b.record(ctx, "beneficiary_list", start, err)
	return beneficiaries, err
}

func (b *beneficiaryUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := b.next.Delete(ctx, id)
	b.record(ctx, "beneficiary_delete", start, err)
	return err
}

func (b *beneficiaryUseCaseWithMetrics) FindByIdentifier(
	ctx context.Context,
	tc string,
) (*nationalidDomain.Beneficiary, error) {
	start := time.Now()
	beneficiary, err := b.next.FindByIdentifier(ctx, tc)
	b.record(ctx, "beneficiary_find_by_tc", start, err)
	return beneficiary, err
}

type dependentUseCaseWithMetrics struct {
	recorder
	next DependentUseCase
}

// NewDependentUseCaseWithMetrics wraps a DependentUseCase with metrics recording.
func NewDependentUseCaseWithMetrics(useCase DependentUseCase, m metrics.BusinessMetrics) DependentUseCase {
	return &dependentUseCaseWithMetrics{recorder: recorder{metrics: m}, next: useCase}
}

func (d *dependentUseCaseWithMetrics) Create(
	ctx context.Context,
	input *nationalidDomain.CreateDependentInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Dependent, error) {
	start := time.Now()
	dependent, err := d.next.Create(ctx, input, claim)
	d.record(ctx, "dependent_create", start, err)
	return dependent, err
}

func (d *dependentUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *nationalidDomain.UpdateDependentInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Dependent, error) {
	start := time.Now()
	dependent, err := d.next.Update(ctx, id, input, claim)
	d.record(ctx, "dependent_update", start, err)
	return dependent, err
}

func (d *dependentUseCaseWithMetrics) ListByBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
) ([]*nationalidDomain.Dependent, error) {
	start := time.Now()
	dependents, err := d.next.ListByBeneficiary(ctx, beneficiaryID)
	d.record(ctx, "dependent_list", start, err)
	return dependents, err
}

func (d *dependentUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	d.record(ctx, "dependent_delete", start, err)
	return err
}

func (d *dependentUseCaseWithMetrics) FindByIdentifier(
	ctx context.Context,
	tc string,
) (*nationalidDomain.Dependent, error) {
	start := time.Now()
	dependent, err := d.next.FindByIdentifier(ctx, tc)
	d.record(ctx, "dependent_find_by_tc", start, err)
	return dependent, err
}

type migrationUseCaseWithMetrics struct {
	recorder
	next MigrationUseCase
}

// NewMigrationUseCaseWithMetrics wraps a MigrationUseCase with metrics recording.
func NewMigrationUseCaseWithMetrics(useCase MigrationUseCase, m metrics.BusinessMetrics) MigrationUseCase {
	return &migrationUseCaseWithMetrics{recorder: recorder{metrics: m}, next: useCase}
}

func (m *migrationUseCaseWithMetrics) MigrateLegacy(
	ctx context.Context,
	batchSize int,
	dryRun bool,
) (*nationalidDomain.MigrationReport, error) {
	start := time.Now()
	report, err := m.next.MigrateLegacy(ctx, batchSize, dryRun)
	m.record(ctx, "legacy_migrate", start, err)
	return report, err
}

func (m *migrationUseCaseWithMetrics) Status(ctx context.Context) (*nationalidDomain.LegacyStatus, error) {
	start := time.Now()
	status, err := m.next.Status(ctx)
	m.record(ctx, "legacy_status", start, err)
	return status, err
}
