package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

// RunMigrateLegacyTC rewrites plaintext TC numbers to their salted hashes on
// behalf of operator, who must be an active ADMIN, MANAGER or SUPER_ADMIN.
// In dry-run mode records are only counted.
func RunMigrateLegacyTC(
	ctx context.Context,
	migrationUseCase nationalidUseCase.MigrationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	operator string,
	batchSize int,
	dryRun bool,
	format string,
) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be a positive number, got: %d", batchSize)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	ctx, err := withOperator(ctx, operator)
	if err != nil {
		return err
	}

	logger.Info("migrating legacy tc numbers",
		slog.String("operator", operator),
		slog.Int("batch_size", batchSize),
		slog.Bool("dry_run", dryRun),
	)

	report, err := migrationUseCase.MigrateLegacy(ctx, batchSize, dryRun)
	if err != nil {
		return fmt.Errorf("failed to migrate legacy tc numbers: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, report); err != nil {
			return err
		}
	} else {
		outputMigrationText(writer, report)
	}

	logger.Info("legacy tc migration completed",
		slog.Int("migrated", report.Migrated()),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

func outputMigrationText(writer io.Writer, report *nationalidDomain.MigrationReport) {
	if report.DryRun {
		_, _ = fmt.Fprintf(writer, "Legacy TC Migration (dry-run)\n")
	} else {
		_, _ = fmt.Fprintf(writer, "Legacy TC Migration\n")
	}
	_, _ = fmt.Fprintf(writer, "===================\n\n")

	for _, c := range report.Collections {
		_, _ = fmt.Fprintf(writer, "%s:\n", c.Collection)
		_, _ = fmt.Fprintf(writer, "  Scanned:    %d\n", c.Scanned)
		_, _ = fmt.Fprintf(writer, "  Migrated:   %d\n", c.Migrated)
		_, _ = fmt.Fprintf(writer, "  Conflicts:  %d\n", c.Conflicts)
		_, _ = fmt.Fprintf(writer, "  Invalid:    %d\n", c.Invalid)
		_, _ = fmt.Fprintf(writer, "  Skipped:    %d\n\n", c.Skipped)
	}

	if report.DryRun {
		_, _ = fmt.Fprintf(writer, "Would migrate %d record(s)\n", report.Migrated())
		return
	}
	_, _ = fmt.Fprintf(writer, "Migrated %d record(s)\n", report.Migrated())
}
