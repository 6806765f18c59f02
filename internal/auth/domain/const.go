// Package domain defines the user directory and bearer token models.
package domain

import "fmt"

// Role is the portal role assigned to a user.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleMember     Role = "MEMBER"
	RoleViewer     Role = "VIEWER"
	RoleVolunteer  Role = "VOLUNTEER"
)

// DefaultRole is assumed for users stored without a role.
const DefaultRole = RoleMember

// Roles lists every known role.
var Roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleManager,
	RoleMember,
	RoleViewer,
	RoleVolunteer,
}

// IsKnown reports whether r is one of Roles. Matching is case-sensitive.
func (r Role) IsKnown() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts s into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsKnown() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

// RoleOrDefault returns DefaultRole for an empty role and r otherwise.
func RoleOrDefault(r Role) Role {
	if r == "" {
		return DefaultRole
	}
	return r
}
