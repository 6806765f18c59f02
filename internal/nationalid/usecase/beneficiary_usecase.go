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

type beneficiaryUseCase struct {
	txManager       database.TxManager
	beneficiaryRepo BeneficiaryRepository
	access          *identifierAccess
}

// Create authorizes the caller, validates and hashes the identifier, writes
// the audit entry and stores the beneficiary with the hashed identifier.
func (b *beneficiaryUseCase) Create(
	ctx context.Context,
	input *nationalidDomain.CreateBeneficiaryInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Beneficiary, error) {
	caller, err := b.access.guard.Authorize(ctx, claim)
	if err != nil {
		return nil, err
	}

	status, err := nationalidDomain.ParseBeneficiaryStatus(string(input.Status))
	if err != nil {
		return nil, err
	}

	hashed, err := b.access.hashNew(ctx, caller, input.TCNo, nationalidDomain.ActionBeneficiaryCreate)
	if err != nil {
		return nil, err
	}

	familySize := input.FamilySize
	if familySize < 1 {
		familySize = 1
	}

	now := time.Now().UTC()
	beneficiary := &nationalidDomain.Beneficiary{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         strings.TrimSpace(input.Name),
		TCNo:         &hashed,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		City:         input.City,
		District:     input.District,
		Neighborhood: input.Neighborhood,
		FamilySize:   familySize,
		Status:       status,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = b.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := ensureIdentifierAvailable(
			ctx, b.beneficiaryRepo.IdentifierOwner, hashed, input.TCNo, uuid.Nil,
		); err != nil {
			return err
		}
		return b.beneficiaryRepo.Create(ctx, beneficiary)
	})
	if err != nil {
		return nil, err
	}
	return beneficiary, nil
}

// Update applies a partial update. The identifier machinery runs only when
// input.TCNo is set: a value is authorized, validated, hashed and checked for
// uniqueness; "" is authorized and clears the identifier. Authorization and
// the audit entry happen before the write transaction opens.
func (b *beneficiaryUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *nationalidDomain.UpdateBeneficiaryInput,
	claim *nationalidDomain.Caller,
) (*nationalidDomain.Beneficiary, error) {
	current, err := b.beneficiaryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := b.access.change(
		ctx, claim, input.TCNo, current.TCNo,
		nationalidDomain.ActionBeneficiaryUpdate, nationalidDomain.ActionBeneficiaryClear,
		func() error {
			if input.Status != nil && !input.Status.IsValid() {
				return nationalidDomain.ErrInvalidStatus
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	var updated *nationalidDomain.Beneficiary
	err = b.txManager.WithTx(ctx, func(ctx context.Context) error {
		beneficiary, err := b.beneficiaryRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		beneficiary.TCNo, err = change.resolve(ctx, b.beneficiaryRepo.IdentifierOwner, beneficiary.ID, beneficiary.TCNo)
		if err != nil {
			return err
		}

		input.Apply(beneficiary)
		beneficiary.UpdatedAt = time.Now().UTC()

		if err := b.beneficiaryRepo.Update(ctx, beneficiary); err != nil {
			return err
		}

		updated, err = b.beneficiaryRepo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (b *beneficiaryUseCase) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	return b.beneficiaryRepo.Get(ctx, id)
}

func (b *beneficiaryUseCase) List(ctx context.Context, offset, limit int) ([]*nationalidDomain.Beneficiary, error) {
	return b.beneficiaryRepo.List(ctx, offset, limit)
}

// Delete removes the beneficiary and, through the foreign key, its dependents.
func (b *beneficiaryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return b.beneficiaryRepo.Delete(ctx, id)
}

// FindByIdentifier looks a beneficiary up by raw identifier. It returns
// ErrBeneficiaryNotFound when neither the hashed nor the plaintext form matches.
func (b *beneficiaryUseCase) FindByIdentifier(
	ctx context.Context,
	tc string,
) (*nationalidDomain.Beneficiary, error) {
	return findByIdentifier(
		ctx, b.access, b.beneficiaryRepo.GetByIdentifier, tc, nationalidDomain.ActionBeneficiaryLookup,
	)
}

// NewBeneficiaryUseCase creates a BeneficiaryUseCase.
func NewBeneficiaryUseCase(
	txManager database.TxManager,
	beneficiaryRepo BeneficiaryRepository,
	guard AccessGuard,
	hasher nationalidService.Hasher,
	auditLogger nationalidService.AuditLogger,
) BeneficiaryUseCase {
	return &beneficiaryUseCase{
		txManager:       txManager,
		beneficiaryRepo: beneficiaryRepo,
		access:          &identifierAccess{guard: guard, hasher: hasher, audit: auditLogger},
	}
}
