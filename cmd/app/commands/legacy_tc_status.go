package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

// RunLegacyTCStatus prints how many plaintext TC numbers remain per collection.
func RunLegacyTCStatus(
	ctx context.Context,
	migrationUseCase nationalidUseCase.MigrationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	operator string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	ctx, err := withOperator(ctx, operator)
	if err != nil {
		return err
	}

	status, err := migrationUseCase.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get legacy tc status: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"beneficiaries": status.Beneficiaries,
			"dependents":    status.Dependents,
			"complete":      status.Complete(),
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Plaintext TC numbers remaining\n")
		_, _ = fmt.Fprintf(writer, "  Beneficiaries:  %d\n", status.Beneficiaries)
		_, _ = fmt.Fprintf(writer, "  Dependents:     %d\n\n", status.Dependents)
		if status.Complete() {
			_, _ = fmt.Fprintf(writer, "Status: COMPLETE\n")
		} else {
			_, _ = fmt.Fprintf(writer, "Status: PENDING (run migrate-legacy-tc)\n")
		}
	}

	logger.Info("legacy tc status",
		slog.Int64("beneficiaries", status.Beneficiaries),
		slog.Int64("dependents", status.Dependents),
	)

	return nil
}
