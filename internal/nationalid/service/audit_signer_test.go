package service

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

func newSigningKey(t testing.TB) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func newAuditLog() *nationalidDomain.AuditLog {
	return &nationalidDomain.AuditLog{
		ID:               uuid.Must(uuid.NewV7()),
		RequestID:        "req-1",
		UserID:           uuid.Must(uuid.NewV7()),
		Role:             "ADMIN",
		Action:           nationalidDomain.ActionBeneficiaryLookup,
		MaskedIdentifier: "123******01",
		Metadata:         map[string]any{"ip": "192.0.2.1", "browser": "Chrome"},
		CreatedAt:        time.Now().UTC(),
	}
}

func TestAuditSigner_SignAndVerify(t *testing.T) {
	signer := NewAuditSigner()
	key := newSigningKey(t)
	log := newAuditLog()

	signature, err := signer.Sign(key, log)
	require.NoError(t, err)
	assert.Len(t, signature, 32)

	log.Signature = signature
	assert.NoError(t, signer.Verify(key, log))
}

func TestAuditSigner_VerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(log *nationalidDomain.AuditLog)
	}{
		{name: "Error_Action", tamper: func(l *nationalidDomain.AuditLog) { l.Action = "something else" }},
		{name: "Error_Role", tamper: func(l *nationalidDomain.AuditLog) { l.Role = "SUPER_ADMIN" }},
		{name: "Error_UserID", tamper: func(l *nationalidDomain.AuditLog) { l.UserID = uuid.Must(uuid.NewV7()) }},
		{name: "Error_MaskedIdentifier", tamper: func(l *nationalidDomain.AuditLog) { l.MaskedIdentifier = "987******09" }},
		{name: "Error_Extra", tamper: func(l *nationalidDomain.AuditLog) { l.Extra = nationalidDomain.LegacyLookupExtra }},
		{name: "Error_Metadata", tamper: func(l *nationalidDomain.AuditLog) { l.Metadata["ip"] = "198.51.100.7" }},
		{name: "Error_CreatedAt", tamper: func(l *nationalidDomain.AuditLog) { l.CreatedAt = l.CreatedAt.Add(time.Second) }},
		{name: "Error_RequestID", tamper: func(l *nationalidDomain.AuditLog) { l.RequestID = "req-2" }},
	}

	signer := NewAuditSigner()
	key := newSigningKey(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newAuditLog()
			signature, err := signer.Sign(key, log)
			require.NoError(t, err)
			log.Signature = signature

			tt.tamper(log)

			assert.ErrorIs(t, signer.Verify(key, log), nationalidDomain.ErrSignatureInvalid)
		})
	}
}

func TestAuditSigner_FieldBoundaries(t *testing.T) {
	signer := NewAuditSigner()
	key := newSigningKey(t)

	a := newAuditLog()
	a.Action, a.Extra = "ab", "c"
	b := *a
	b.Action, b.Extra = "a", "bc"

	sigA, err := signer.Sign(key, a)
	require.NoError(t, err)
	sigB, err := signer.Sign(key, &b)
	require.NoError(t, err)

	assert.NotEqual(t, sigA, sigB)
}

func TestAuditSigner_NilAndEmptyMetadata(t *testing.T) {
	signer := NewAuditSigner()
	key := newSigningKey(t)

	log := newAuditLog()
	log.Metadata = nil
	nilSig, err := signer.Sign(key, log)
	require.NoError(t, err)

	log.Metadata = map[string]any{}
	emptySig, err := signer.Sign(key, log)
	require.NoError(t, err)

	assert.NotEqual(t, nilSig, emptySig)
}

func TestAuditSigner_VerifyWithWrongKey(t *testing.T) {
	signer := NewAuditSigner()
	log := newAuditLog()

	signature, err := signer.Sign(newSigningKey(t), log)
	require.NoError(t, err)
	log.Signature = signature

	assert.ErrorIs(t, signer.Verify(newSigningKey(t), log), nationalidDomain.ErrSignatureInvalid)
}

func TestAuditSigner_ConsistentSignatures(t *testing.T) {
	signer := NewAuditSigner()
	key := newSigningKey(t)
	log := newAuditLog()

	first, err := signer.Sign(key, log)
	require.NoError(t, err)
	second, err := signer.Sign(key, log)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func BenchmarkAuditSigner_Sign(b *testing.B) {
	signer := NewAuditSigner()
	key := newSigningKey(b)
	log := newAuditLog()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signer.Sign(key, log); err != nil {
			b.Fatal(err)
		}
	}
}
