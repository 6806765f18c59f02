package domain

import (
	"fmt"

	"github.com/google/uuid"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
)

var privilegedRoles = map[authDomain.Role]struct{}{
	authDomain.RoleAdmin:      {},
	authDomain.RoleManager:    {},
	authDomain.RoleSuperAdmin: {},
}

// CanAccess reports whether role may read or write raw identifiers.
// The comparison is exact.
func CanAccess(role authDomain.Role) bool {
	_, ok := privilegedRoles[role]
	return ok
}

// Caller is the resolved identity behind a guarded operation.
type Caller struct {
	UserID uuid.UUID
	Role   authDomain.Role
}

// AuditEntry is one guarded access to an identifier. MaskedIdentifier must
// already be masked.
type AuditEntry struct {
	Action           string
	Caller           Caller
	MaskedIdentifier string
	Extra            string
}

// Line renders the entry in the audit trail format.
func (e AuditEntry) Line() string {
	line := fmt.Sprintf("[AUDIT] %s by user %s (%s) - TC: %s",
		e.Action, e.Caller.UserID, e.Caller.Role, e.MaskedIdentifier)
	if e.Extra != "" {
		line += " - " + e.Extra
	}
	return line
}
