package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
)

type saltUseCase struct {
	settingRepo SettingRepository
	generator   nationalidService.SaltGenerator
}

// Create provisions the salt once. Replacing it would orphan every stored
// hash, so an existing salt is never overwritten.
func (s *saltUseCase) Create(
	ctx context.Context,
	value string,
	operator *uuid.UUID,
) (*nationalidDomain.Setting, error) {
	_, err := s.settingRepo.Get(ctx, nationalidDomain.SaltSettingCategory, nationalidDomain.SaltSettingKey)
	if err == nil {
		return nil, nationalidDomain.ErrSaltAlreadyConfigured
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if value == "" {
		value, err = s.generator.Generate()
		if err != nil {
			return nil, err
		}
	}

	setting := &nationalidDomain.Setting{
		ID:          uuid.Must(uuid.NewV7()),
		Category:    nationalidDomain.SaltSettingCategory,
		Key:         nationalidDomain.SaltSettingKey,
		Value:       value,
		Description: "Salt for TC number hashing",
		DataType:    "string",
		IsSensitive: true,
		UpdatedBy:   operator,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.settingRepo.Create(ctx, setting); err != nil {
		if apperrors.Is(err, nationalidDomain.ErrSettingAlreadyExists) {
			return nil, nationalidDomain.ErrSaltAlreadyConfigured
		}
		return nil, err
	}
	return setting, nil
}

// NewSaltUseCase creates a SaltUseCase.
func NewSaltUseCase(settingRepo SettingRepository, generator nationalidService.SaltGenerator) SaltUseCase {
	return &saltUseCase{settingRepo: settingRepo, generator: generator}
}
