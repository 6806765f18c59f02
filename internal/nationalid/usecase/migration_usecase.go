package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
)

const defaultMigrationBatchSize = 500

type migrationUseCase struct {
	beneficiaryRepo BeneficiaryRepository
	dependentRepo   DependentRepository
	access          *identifierAccess
	logger          *slog.Logger
}

// MigrateLegacy rewrites plaintext identifiers to their hashed form, one
// keyset page at a time. Each rewrite is a compare-and-set on the old value
// so a concurrent update of the same record wins. Values that fail format
// validation or whose hash is already held by another record are counted and
// left in place.
func (m *migrationUseCase) MigrateLegacy(
	ctx context.Context,
	batchSize int,
	dryRun bool,
) (*nationalidDomain.MigrationReport, error) {
	caller, err := m.access.guard.RequireAccess(ctx)
	if err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = defaultMigrationBatchSize
	}

	report := &nationalidDomain.MigrationReport{DryRun: dryRun}
	collections := []struct {
		name  string
		store LegacyIdentifierStore
	}{
		{name: nationalidDomain.CollectionBeneficiaries, store: m.beneficiaryRepo},
		{name: nationalidDomain.CollectionDependents, store: m.dependentRepo},
	}

	for _, collection := range collections {
		result, err := m.migrateCollection(ctx, caller, collection.name, collection.store, batchSize, dryRun)
		if err != nil {
			return nil, err
		}
		report.Collections = append(report.Collections, *result)
	}

	m.logger.InfoContext(ctx, "legacy tc migration finished",
		slog.Bool("dry_run", dryRun),
		slog.Int("migrated", report.Migrated()),
	)
	return report, nil
}

func (m *migrationUseCase) migrateCollection(
	ctx context.Context,
	caller *nationalidDomain.Caller,
	name string,
	store LegacyIdentifierStore,
	batchSize int,
	dryRun bool,
) (*nationalidDomain.CollectionMigrationReport, error) {
	result := &nationalidDomain.CollectionMigrationReport{Collection: name}
	action := nationalidDomain.ActionLegacyMigrate
	if dryRun {
		action = nationalidDomain.ActionLegacyMigrateDryRun
	}

	afterID := uuid.Nil
	for {
		batch, err := store.ListLegacy(ctx, afterID, batchSize)
		if err != nil {
			return nil, err
		}

		for _, legacy := range batch {
			afterID = legacy.ID
			result.Scanned++

			if !nationalidDomain.IsValidFormat(legacy.Value) {
				result.Invalid++
				m.logger.WarnContext(ctx, "legacy tc value has invalid format",
					slog.String("collection", name),
					slog.String("id", legacy.ID.String()),
				)
				continue
			}

			hashed, err := m.access.hasher.Hash(ctx, legacy.Value)
			if err != nil {
				return nil, err
			}

			owner, err := store.IdentifierOwner(ctx, hashed)
			switch {
			case err == nil && owner != legacy.ID:
				result.Conflicts++
				continue
			case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
				return nil, err
			}

			m.access.audit.Log(ctx, nationalidDomain.AuditEntry{
				Action:           action,
				Caller:           *caller,
				MaskedIdentifier: nationalidDomain.MaskString(legacy.Value),
				Extra:            name,
			})

			if dryRun {
				result.Migrated++
				continue
			}

			replaced, err := store.ReplaceIdentifier(ctx, legacy.ID, legacy.Value, hashed)
			switch {
			case apperrors.Is(err, nationalidDomain.ErrDuplicateIdentifier):
				result.Conflicts++
			case err != nil:
				return nil, err
			case !replaced:
				result.Skipped++
			default:
				result.Migrated++
			}
		}

		if len(batch) < batchSize {
			return result, nil
		}
	}
}

// Status counts the remaining plaintext identifiers of both collections concurrently.
func (m *migrationUseCase) Status(ctx context.Context) (*nationalidDomain.LegacyStatus, error) {
	if _, err := m.access.guard.RequireAccess(ctx); err != nil {
		return nil, err
	}

	status := &nationalidDomain.LegacyStatus{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := m.beneficiaryRepo.CountLegacy(gctx)
		status.Beneficiaries = count
		return err
	})
	g.Go(func() error {
		count, err := m.dependentRepo.CountLegacy(gctx)
		status.Dependents = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return status, nil
}

// NewMigrationUseCase creates a MigrationUseCase.
func NewMigrationUseCase(
	beneficiaryRepo BeneficiaryRepository,
	dependentRepo DependentRepository,
	guard AccessGuard,
	hasher nationalidService.Hasher,
	auditLogger nationalidService.AuditLogger,
	logger *slog.Logger,
) MigrationUseCase {
	return &migrationUseCase{
		beneficiaryRepo: beneficiaryRepo,
		dependentRepo:   dependentRepo,
		access:          &identifierAccess{guard: guard, hasher: hasher, audit: auditLogger},
		logger:          logger,
	}
}
