package usecase

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	databaseMocks "github.com/dernekportal/tcguard/internal/database/mocks"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
)

// Identifiers and their hashes under DefaultFallbackSalt.
const (
	tcPrimary       = "12345678901"
	hashPrimary     = "051c2b0311a62c0fabb7ae28d3974f0b93feb198793fba8281727b104cde6a46"
	tcSecondary     = "98765432109"
	hashSecondary   = "6528fed0244cad970152e3af039d826878b13447de9039afd278b123a9dfbe9e"
	tcMigrated      = "11111111111"
	hashMigrated    = "060952566c3dc333bf4002e609fc57405e9d628bf84325ec0635d274d12ff661"
	tcConflicting   = "22222222222"
	hashConflicting = "5c52cb459ec3d450b7af0a5090691d4937aad96ab636d25f321ccd593e9edb4a"
	maskedPrimary   = "123******01"
)

func strPtr(s string) *string { return &s }

func newAdminCaller() *nationalidDomain.Caller {
	return &nationalidDomain.Caller{
		UserID: uuid.MustParse("0190c3c4-1a2b-7c3d-8e4f-5a6b7c8d9e0f"),
		Role:   authDomain.RoleAdmin,
	}
}

func newTestHasher() nationalidService.Hasher {
	return nationalidService.NewHasher(fixedSalt(nationalidDomain.DefaultFallbackSalt))
}

func newTestTxManager() *databaseMocks.MockTxManager {
	txManager := &databaseMocks.MockTxManager{}
	txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
	return txManager
}

func auditEntry(action string, caller *nationalidDomain.Caller, masked, extra string) nationalidDomain.AuditEntry {
	return nationalidDomain.AuditEntry{
		Action:           action,
		Caller:           *caller,
		MaskedIdentifier: masked,
		Extra:            extra,
	}
}
