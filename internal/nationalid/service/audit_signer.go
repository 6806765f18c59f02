package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

const signingKeyInfo = "audit-log-signing-v1"

type auditSigner struct{}

// NewAuditSigner creates an AuditSigner using HKDF-SHA256 key derivation and
// HMAC-SHA256 signatures.
func NewAuditSigner() AuditSigner {
	return &auditSigner{}
}

func (a *auditSigner) deriveSigningKey(key []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, key, nil, []byte(signingKeyInfo))

	signingKey := make([]byte, 32)
	if _, err := io.ReadFull(reader, signingKey); err != nil {
		return nil, err
	}
	return signingKey, nil
}

// canonicalize encodes the signed fields in a fixed order:
// request_id || user_id || role || action || masked_identifier || extra || metadata || created_at.
// Variable-length fields carry a 4-byte length prefix.
func (a *auditSigner) canonicalize(log *nationalidDomain.AuditLog) ([]byte, error) {
	buf := make([]byte, 0, 512)

	buf = appendLengthPrefixed(buf, []byte(log.RequestID))
	buf = append(buf, log.UserID[:]...)
	buf = appendLengthPrefixed(buf, []byte(log.Role))
	buf = appendLengthPrefixed(buf, []byte(log.Action))
	buf = appendLengthPrefixed(buf, []byte(log.MaskedIdentifier))
	buf = appendLengthPrefixed(buf, []byte(log.Extra))

	if log.Metadata != nil {
		// encoding/json sorts map keys.
		metadata, err := json.Marshal(log.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		buf = appendLengthPrefixed(buf, metadata)
	} else {
		buf = appendLengthPrefixed(buf, nil)
	}

	buf = binary.BigEndian.AppendUint64(buf, uint64(log.CreatedAt.UnixNano()))
	return buf, nil
}

func appendLengthPrefixed(buf []byte, data []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(data))) //nolint:gosec // fields are bounded by column sizes
	return append(buf, data...)
}

func (a *auditSigner) Sign(key []byte, log *nationalidDomain.AuditLog) ([]byte, error) {
	signingKey, err := a.deriveSigningKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}
	defer zero(signingKey)

	canonical, err := a.canonicalize(log)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize log: %w", err)
	}

	mac := hmac.New(sha256.New, signingKey)
	mac.Write(canonical)
	return mac.Sum(nil), nil
}

func (a *auditSigner) Verify(key []byte, log *nationalidDomain.AuditLog) error {
	expected, err := a.Sign(key, log)
	if err != nil {
		return fmt.Errorf("failed to compute expected signature: %w", err)
	}
	if !hmac.Equal(log.Signature, expected) {
		return nationalidDomain.ErrSignatureInvalid
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
