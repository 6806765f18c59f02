package service

import (
	"context"
	"log/slog"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

type auditLogger struct {
	logger   *slog.Logger
	recorder AuditRecorder
}

// NewAuditLogger creates an AuditLogger writing WARN lines to logger.
// When recorder is non-nil every entry is also persisted through it.
func NewAuditLogger(logger *slog.Logger, recorder AuditRecorder) AuditLogger {
	return &auditLogger{logger: logger, recorder: recorder}
}

func (a *auditLogger) Log(ctx context.Context, entry nationalidDomain.AuditEntry) {
	a.logger.WarnContext(ctx, entry.Line())

	if a.recorder == nil {
		return
	}
	if err := a.recorder.Record(ctx, entry); err != nil {
		a.logger.ErrorContext(ctx, "failed to persist audit entry",
			slog.String("action", entry.Action),
			slog.String("user_id", entry.Caller.UserID.String()),
			slog.Any("error", err),
		)
	}
}
