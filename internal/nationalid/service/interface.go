// Package service provides the identifier hashing, salt resolution, audit
// trail and key handling services.
package service

import (
	"context"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// SettingReader reads one entry of the settings store.
type SettingReader interface {
	Get(ctx context.Context, category, key string) (*nationalidDomain.Setting, error)
}

// SaltProvider resolves the identifier hashing salt. It never fails: when the
// settings store has no usable salt it returns the fallback and a source
// describing why.
type SaltProvider interface {
	Salt(ctx context.Context) (string, SaltSource)
}

// Hasher validates and hashes raw identifiers.
type Hasher interface {
	// Hash returns the 64 character hashed form of tc. Malformed input fails
	// with ErrInvalidIdentifierFormat before the salt is resolved.
	Hash(ctx context.Context, tc string) (string, error)
}

// AuditRecorder persists audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry nationalidDomain.AuditEntry) error
}

// AuditLogger writes the audit trail. It never fails the guarded operation.
type AuditLogger interface {
	Log(ctx context.Context, entry nationalidDomain.AuditEntry)
}

// AuditSigner signs persisted audit logs and verifies their signatures.
type AuditSigner interface {
	// Sign returns the 32-byte HMAC-SHA256 signature of log under a key derived from key.
	Sign(key []byte, log *nationalidDomain.AuditLog) ([]byte, error)

	// Verify returns ErrSignatureInvalid when log.Signature does not match.
	Verify(key []byte, log *nationalidDomain.AuditLog) error
}

// SaltGenerator produces new hashing salts.
type SaltGenerator interface {
	Generate() (string, error)
}

// KMSKeeper encrypts and decrypts with a KMS managed key.
// *secrets.Keeper satisfies it.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for KMS key URIs.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI (gcpkms://, awskms://,
	// azurekeyvault://, hashivault://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
