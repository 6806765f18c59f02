package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
)

type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

func (p *passwordService) Hash(plainPassword string) (string, error) {
	hash, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

func (p *passwordService) Verify(plainPassword, passwordHash string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), passwordHash)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService using Argon2id with the
// interactive policy, tuned for login latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		panic(err)
	}

	return &passwordService{hasher: hasher}
}
