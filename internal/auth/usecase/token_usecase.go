package usecase

import (
	"context"
	"errors"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	authService "github.com/dernekportal/tcguard/internal/auth/service"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

type tokenUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	user, err := t.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.passwordService.Verify(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, authDomain.ErrUserInactive
	}

	token, expiresAt, err := t.tokenService.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{Token: token, ExpiresAt: expiresAt}, nil
}

func (t *tokenUseCase) Authenticate(ctx context.Context, token string) (*requestcontext.Identity, error) {
	subject, err := t.tokenService.Validate(token)
	if err != nil {
		return nil, err
	}
	return &requestcontext.Identity{TokenIdentifier: subject}, nil
}

// NewTokenUseCase creates a TokenUseCase.
func NewTokenUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
