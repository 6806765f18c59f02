// Package domain defines the national identifier (TC number) protection
// models: the identifier rules, the access policy, the audit entry and the
// records that carry an identifier.
package domain

// Settings store coordinates of the hashing salt.
const (
	SaltSettingCategory = "security"
	SaltSettingKey      = "tc_hash_salt"
)

// DefaultFallbackSalt is used when the settings store has no usable salt.
const DefaultFallbackSalt = "PORTAL_TC_SALT_2024"

const (
	// IdentifierLength is the number of digits in a raw identifier.
	IdentifierLength = 11

	// HashedIdentifierLength is the length of a stored hashed identifier
	// (hex-encoded SHA-256).
	HashedIdentifierLength = 64
)

// maskPlaceholder is returned by Mask for values that cannot be masked.
const maskPlaceholder = "***"

// LegacyLookupExtra marks audit entries of lookups answered by a plaintext record.
const LegacyLookupExtra = "legacy plaintext record"

// Audit actions.
const (
	ActionBeneficiaryCreate   = "Beneficiary creation with TC number"
	ActionBeneficiaryUpdate   = "Beneficiary TC number update"
	ActionBeneficiaryClear    = "Beneficiary TC number cleared"
	ActionBeneficiaryLookup   = "Beneficiary lookup by TC number"
	ActionDependentCreate     = "Dependent creation with TC number"
	ActionDependentUpdate     = "Dependent TC number update"
	ActionDependentClear      = "Dependent TC number cleared"
	ActionDependentLookup     = "Dependent lookup by TC number"
	ActionLegacyMigrate       = "Legacy TC number migration"
	ActionLegacyMigrateDryRun = "Legacy TC number migration (dry run)"
)
