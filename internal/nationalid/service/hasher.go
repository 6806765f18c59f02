package service

import (
	"context"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

type hasher struct {
	saltProvider SaltProvider
}

// NewHasher creates a Hasher using saltProvider for every hash.
func NewHasher(saltProvider SaltProvider) Hasher {
	return &hasher{saltProvider: saltProvider}
}

func (h *hasher) Hash(ctx context.Context, tc string) (string, error) {
	if !nationalidDomain.IsValidFormat(tc) {
		return "", nationalidDomain.ErrInvalidIdentifierFormat
	}

	salt, _ := h.saltProvider.Salt(ctx)
	return nationalidDomain.HashIdentifier(salt, tc), nil
}
