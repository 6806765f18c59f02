package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	authUseCase "github.com/dernekportal/tcguard/internal/auth/usecase"
)

// RunCreateUser creates a portal user. When password is empty it is read as
// the first line of io.Reader.
func RunCreateUser(
	ctx context.Context,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
	name, email, password, role string,
	isActive bool,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	parsedRole, err := authDomain.ParseRole(strings.ToUpper(strings.TrimSpace(role)))
	if err != nil {
		return err
	}

	if password == "" {
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	logger.Info("creating new user", slog.String("email", email), slog.String("role", parsedRole.String()))

	user, err := userUseCase.Create(ctx, &authDomain.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     parsedRole,
		IsActive: isActive,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]any{
			"id":        user.ID,
			"email":     user.Email,
			"role":      user.Role,
			"is_active": user.IsActive,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(io.Writer, "User created successfully\n")
		_, _ = fmt.Fprintf(io.Writer, "ID:     %s\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "Email:  %s\n", user.Email)
		_, _ = fmt.Fprintf(io.Writer, "Role:   %s\n", user.Role)
		_, _ = fmt.Fprintf(io.Writer, "Active: %t\n", user.IsActive)
	}

	logger.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("password is required")
	}

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && password == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	_, _ = fmt.Fprintln(io.Writer)

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
