package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
)

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateUser", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		passwords := &mockPasswordService{}

		passwords.On("Hash", "Dernek-Portal-2026").Return("argon-hash", nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *authDomain.User) bool {
			return u.Email == "manager@dernek.org.tr" &&
				u.Name == "Mehmet Kaya" &&
				u.Role == authDomain.RoleManager &&
				u.PasswordHash == "argon-hash" &&
				u.IsActive
		})).Return(nil)

		uc := NewUserUseCase(userRepo, passwords)
		user, err := uc.Create(ctx, &authDomain.CreateUserInput{
			Name:     " Mehmet Kaya ",
			Email:    "manager@dernek.org.tr",
			Password: "Dernek-Portal-2026",
			Role:     authDomain.RoleManager,
			IsActive: true,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		userRepo.AssertExpectations(t)
		passwords.AssertExpectations(t)
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		uc := NewUserUseCase(&mockUserRepository{}, &mockPasswordService{})
		_, err := uc.Create(ctx, &authDomain.CreateUserInput{
			Email:    "x@dernek.org.tr",
			Password: "pw",
			Role:     authDomain.Role("admin"),
		})

		assert.ErrorIs(t, err, authDomain.ErrUnknownRole)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		passwords := &mockPasswordService{}
		passwords.On("Hash", "pw").Return("h", nil)
		userRepo.On("Create", ctx, mock.Anything).Return(authDomain.ErrUserAlreadyExists)

		uc := NewUserUseCase(userRepo, passwords)
		_, err := uc.Create(ctx, &authDomain.CreateUserInput{Email: "x@dernek.org.tr", Password: "pw"})

		assert.ErrorIs(t, err, authDomain.ErrUserAlreadyExists)
	})
}
