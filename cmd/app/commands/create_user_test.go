package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
)

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	newUser := func(input *authDomain.CreateUserInput) *authDomain.User {
		return &authDomain.User{
			ID:       uuid.New(),
			Name:     input.Name,
			Email:    input.Email,
			Role:     input.Role,
			IsActive: input.IsActive,
		}
	}

	t.Run("Success_PasswordFlagText", func(t *testing.T) {
		input := &authDomain.CreateUserInput{
			Name:     "Ayse Yilmaz",
			Email:    "ayse@example.com",
			Password: "s3cret-pass",
			Role:     authDomain.RoleAdmin,
			IsActive: true,
		}
		user := newUser(input)
		userUseCase := &mockUserUseCase{}
		userUseCase.On("Create", ctx, input).Return(user, nil)

		var out bytes.Buffer
		err := RunCreateUser(
			ctx, userUseCase, logger,
			input.Name, input.Email, input.Password, "admin", true, "text",
			IOTuple{Writer: &out},
		)

		require.NoError(t, err)
		assert.Contains(t, out.String(), user.ID.String())
		assert.Contains(t, out.String(), "Role:   ADMIN")
		assert.NotContains(t, out.String(), input.Password)
		userUseCase.AssertExpectations(t)
	})

	t.Run("Success_PromptedPasswordJSON", func(t *testing.T) {
		input := &authDomain.CreateUserInput{
			Name:     "Mehmet Kaya",
			Email:    "mehmet@example.com",
			Password: "typed-pass",
			Role:     authDomain.RoleManager,
			IsActive: false,
		}
		user := newUser(input)
		userUseCase := &mockUserUseCase{}
		userUseCase.On("Create", ctx, input).Return(user, nil)

		var out bytes.Buffer
		err := RunCreateUser(
			ctx, userUseCase, logger,
			input.Name, input.Email, "", "MANAGER", false, "json",
			IOTuple{Reader: strings.NewReader("typed-pass\n"), Writer: &out},
		)
		require.NoError(t, err)

		jsonStart := strings.Index(out.String(), "{")
		require.GreaterOrEqual(t, jsonStart, 0)
		var result map[string]any
		require.NoError(t, json.Unmarshal([]byte(out.String()[jsonStart:]), &result))
		assert.Equal(t, "MANAGER", result["role"])
		assert.Equal(t, false, result["is_active"])
		userUseCase.AssertExpectations(t)
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		userUseCase := &mockUserUseCase{}

		err := RunCreateUser(
			ctx, userUseCase, logger,
			"name", "user@example.com", "pass", "root", true, "text",
			IOTuple{Writer: &bytes.Buffer{}},
		)

		require.ErrorIs(t, err, authDomain.ErrUnknownRole)
		userUseCase.AssertNotCalled(t, "Create")
	})

	t.Run("Error_EmptyPromptedPassword", func(t *testing.T) {
		err := RunCreateUser(
			ctx, &mockUserUseCase{}, logger,
			"name", "user@example.com", "", "ADMIN", true, "text",
			IOTuple{Reader: strings.NewReader("\n"), Writer: &bytes.Buffer{}},
		)

		require.ErrorContains(t, err, "password cannot be empty")
	})
}
