package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	authService "github.com/dernekportal/tcguard/internal/auth/service"
)

type userUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// Create hashes the password and stores the user. An empty role is stored as
// such and read back as the default role.
func (u *userUseCase) Create(ctx context.Context, input *authDomain.CreateUserInput) (*authDomain.User, error) {
	if input.Role != "" && !input.Role.IsKnown() {
		return nil, authDomain.ErrUnknownRole
	}

	passwordHash, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &authDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Role:         input.Role,
		IsActive:     input.IsActive,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUseCase) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	return u.userRepo.GetByEmail(ctx, email)
}

// NewUserUseCase creates a UserUseCase.
func NewUserUseCase(userRepo UserRepository, passwordService authService.PasswordService) UserUseCase {
	return &userUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
