package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dernekportal/tcguard/internal/database"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
)

type dependentUseCase struct {
	txManager       database.TxManager
	dependentRepo   DependentRepository
	beneficiaryRepo BeneficiaryRepository
	access          *identifierAccess
}

// Create stores a dependent. When input.TCNo is set it goes through the same
// guarded path as a beneficiary identifier; otherwise no authorization runs.
func (d *dependentUseCase) Create(
	ctx context.Context,
	input *nationalidDomain.CreateDependentInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Dependent, error) {
	var tcNo *string
	if input.TCNo != "" {
		caller, err := d.access.guard.Authorize(ctx, claim)
		if err != nil {
			return nil, err
		}
		hashed, err := d.access.hashNew(ctx, caller, input.TCNo, nationalidDomain.ActionDependentCreate)
		if err != nil {
			return nil, err
		}
		tcNo = &hashed
	}

	now := time.Now().UTC()
	dependent := &nationalidDomain.Dependent{
		ID:            uuid.Must(uuid.NewV7()),
		BeneficiaryID: input.BeneficiaryID,
		Name:          strings.TrimSpace(input.Name),
		Relationship:  input.Relationship,
		BirthDate:     input.BirthDate,
		Gender:        input.Gender,
		TCNo:          tcNo,
		Phone:         input.Phone,
		HasDisability: input.HasDisability,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := d.beneficiaryRepo.Get(ctx, input.BeneficiaryID); err != nil {
			return err
		}
		if tcNo != nil {
			if err := ensureIdentifierAvailable(
				ctx, d.dependentRepo.IdentifierOwner, *tcNo, input.TCNo, uuid.Nil,
			); err != nil {
				return err
			}
		}
		return d.dependentRepo.Create(ctx, dependent)
	})
	if err != nil {
		return nil, err
	}
	return dependent, nil
}

// Update applies a partial update with the same identifier rules as
// beneficiaries.
func (d *dependentUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *nationalidDomain.UpdateDependentInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Dependent, error) {
	current, err := d.dependentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := d.access.change(
		ctx, claim, input.TCNo, current.TCNo,
		nationalidDomain.ActionDependentUpdate, nationalidDomain.ActionDependentClear,
		nil,
	)
	if err != nil {
		return nil, err
	}

	var updated *nationalidDomain.Dependent
	err = d.txManager.WithTx(ctx, func(ctx context.Context) error {
		dependent, err := d.dependentRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		dependent.TCNo, err = change.resolve(ctx, d.dependentRepo.IdentifierOwner, dependent.ID, dependent.TCNo)
		if err != nil {
			return err
		}

		input.Apply(dependent)
		dependent.UpdatedAt = time.Now().UTC()

		if err := d.dependentRepo.Update(ctx, dependent); err != nil {
			return err
		}

		updated, err = d.dependentRepo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListByBeneficiary returns ErrBeneficiaryNotFound for an unknown beneficiary.
func (d *dependentUseCase) ListByBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
) ([]*nationalidDomain.Dependent, error) {
	if _, err := d.beneficiaryRepo.Get(ctx, beneficiaryID); err != nil {
		return nil, err
	}
	return d.dependentRepo.ListByBeneficiary(ctx, beneficiaryID)
}

func (d *dependentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return d.dependentRepo.Delete(ctx, id)
}

func (d *dependentUseCase) FindByIdentifier(ctx context.Context, tc string) (*nationalidDomain.Dependent, error) {
	return findByIdentifier(ctx, d.access, d.dependentRepo.GetByIdentifier, tc, nationalidDomain.ActionDependentLookup)
}

// NewDependentUseCase creates a DependentUseCase.
func NewDependentUseCase(
	txManager database.TxManager,
	dependentRepo DependentRepository,
	beneficiaryRepo BeneficiaryRepository,
	guard AccessGuard,
	hasher nationalidService.Hasher,
	auditLogger nationalidService.AuditLogger,
) DependentUseCase {
	return &dependentUseCase{
		txManager:       txManager,
		dependentRepo:   dependentRepo,
		beneficiaryRepo: beneficiaryRepo,
		access:          &identifierAccess{guard: guard, hasher: hasher, audit: auditLogger},
	}
}
