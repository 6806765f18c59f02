package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
	"github.com/dernekportal/tcguard/internal/requestcontext"
)

// ErrSigningKeyNotConfigured is returned by VerifyBatch without a signing key.
var ErrSigningKeyNotConfigured = apperrors.New("audit signing key is not configured")

type auditLogUseCase struct {
	auditLogRepo AuditLogRepository
	signer       nationalidService.AuditSigner
	signingKey   []byte
	now          func() time.Time
}

// Record persists entry with the request id and client info found in ctx.
// The log is signed when a signing key is configured.
func (a *auditLogUseCase) Record(ctx context.Context, entry nationalidDomain.AuditEntry) error {
	auditLog := &nationalidDomain.AuditLog{
		ID:               uuid.Must(uuid.NewV7()),
		RequestID:        requestcontext.RequestID(ctx),
		UserID:           entry.Caller.UserID,
		Role:             entry.Caller.Role.String(),
		Action:           entry.Action,
		MaskedIdentifier: entry.MaskedIdentifier,
		Extra:            entry.Extra,
		Metadata:         clientMetadata(requestcontext.ClientInfoFrom(ctx)),
		// Both stores keep microseconds; the signature must survive a round trip.
		CreatedAt: a.now().UTC().Truncate(time.Microsecond),
	}

	if len(a.signingKey) > 0 {
		signature, err := a.signer.Sign(a.signingKey, auditLog)
		if err != nil {
			return apperrors.Wrap(err, "failed to sign audit log")
		}
		auditLog.Signature = signature
		auditLog.IsSigned = true
	}

	return a.auditLogRepo.Create(ctx, auditLog)
}

func clientMetadata(info *requestcontext.ClientInfo) map[string]any {
	if info == nil {
		return nil
	}
	return map[string]any{
		"ip":              info.IP,
		"user_agent":      info.UserAgent,
		"browser":         info.Browser,
		"browser_version": info.BrowserVersion,
		"os":              info.OS,
		"mobile":          info.Mobile,
		"bot":             info.Bot,
	}
}

func (a *auditLogUseCase) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*nationalidDomain.AuditLog, error) {
	return a.auditLogRepo.List(ctx, offset, limit, createdAtFrom, createdAtTo)
}

func (a *auditLogUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "days must be zero or greater")
	}
	olderThan := a.now().UTC().AddDate(0, 0, -days)
	return a.auditLogRepo.DeleteOlderThan(ctx, olderThan, dryRun)
}

func (a *auditLogUseCase) VerifyBatch(
	ctx context.Context,
	start, end time.Time,
) (*nationalidDomain.VerificationReport, error) {
	if end.Before(start) {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "end date is before start date")
	}
	if len(a.signingKey) == 0 {
		return nil, ErrSigningKeyNotConfigured
	}

	logs, err := a.auditLogRepo.ListByTimeRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &nationalidDomain.VerificationReport{InvalidLogs: make([]uuid.UUID, 0)}
	for _, log := range logs {
		report.TotalChecked++
		if !log.IsSigned {
			report.UnsignedCount++
			continue
		}

		report.SignedCount++
		if err := a.signer.Verify(a.signingKey, log); err != nil {
			report.InvalidCount++
			report.InvalidLogs = append(report.InvalidLogs, log.ID)
			continue
		}
		report.ValidCount++
	}
	return report, nil
}

// NewAuditLogUseCase creates an AuditLogUseCase. An empty signingKey stores
// logs unsigned.
func NewAuditLogUseCase(
	auditLogRepo AuditLogRepository,
	signer nationalidService.AuditSigner,
	signingKey []byte,
) AuditLogUseCase {
	return &auditLogUseCase{
		auditLogRepo: auditLogRepo,
		signer:       signer,
		signingKey:   signingKey,
		now:          time.Now,
	}
}
