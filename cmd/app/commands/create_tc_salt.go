package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	authUseCase "github.com/dernekportal/tcguard/internal/auth/usecase"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

// RunCreateTCSalt provisions the TC hashing salt. An empty value generates a
// random salt. The salt is never written to the output; it lives only in the
// settings store. When operator is set, the setting records that user.
func RunCreateTCSalt(
	ctx context.Context,
	saltUseCase nationalidUseCase.SaltUseCase,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	value string,
	operator string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	var operatorID *uuid.UUID
	if operator = strings.TrimSpace(operator); operator != "" {
		user, err := userUseCase.GetByEmail(ctx, operator)
		if err != nil {
			return fmt.Errorf("failed to resolve operator: %w", err)
		}
		operatorID = &user.ID
	}

	generated := value == ""
	logger.Info("creating tc hash salt", slog.Bool("generated", generated))

	setting, err := saltUseCase.Create(ctx, value, operatorID)
	if err != nil {
		return fmt.Errorf("failed to create tc hash salt: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"id":        setting.ID,
			"category":  setting.Category,
			"key":       setting.Key,
			"generated": generated,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "TC hash salt created successfully\n")
		_, _ = fmt.Fprintf(writer, "Setting: %s.%s (%s)\n", setting.Category, setting.Key, setting.ID)
		if generated {
			_, _ = fmt.Fprintf(writer, "A random salt was generated.\n")
		}
		_, _ = fmt.Fprintf(writer, "\nWARNING: Changing or losing the salt breaks every hashed TC lookup.\n")
	}

	logger.Info("tc hash salt created", slog.String("setting_id", setting.ID.String()))
	return nil
}
