package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is a persisted AuditEntry enriched with request context.
// Signature is an HMAC-SHA256 over the canonical form when IsSigned is true.
type AuditLog struct {
	ID               uuid.UUID
	RequestID        string
	UserID           uuid.UUID
	Role             string
	Action           string
	MaskedIdentifier string
	Extra            string
	Metadata         map[string]any
	Signature        []byte
	IsSigned         bool
	CreatedAt        time.Time
}

// HasValidSignature reports whether the log carries a signature of the
// expected length. It does not verify the signature.
func (a *AuditLog) HasValidSignature() bool {
	return a.IsSigned && len(a.Signature) == 32
}

// VerificationReport summarizes a signature check over a time range.
type VerificationReport struct {
	TotalChecked  int64       `json:"total_checked"`
	SignedCount   int64       `json:"signed_count"`
	UnsignedCount int64       `json:"unsigned_count"`
	ValidCount    int64       `json:"valid_count"`
	InvalidCount  int64       `json:"invalid_count"`
	InvalidLogs   []uuid.UUID `json:"invalid_logs"`
}

// Passed reports whether no signed log failed verification.
func (r *VerificationReport) Passed() bool {
	return r.InvalidCount == 0
}
