package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

var (
	identifierPattern = regexp.MustCompile(`^\d{11}$`)
	hashedPattern     = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// IdentifierStatus describes what a stored identifier column holds.
type IdentifierStatus string

const (
	IdentifierStatusNone   IdentifierStatus = "none"
	IdentifierStatusHashed IdentifierStatus = "hashed"
	IdentifierStatusLegacy IdentifierStatus = "legacy"
)

// IsValidFormat reports whether tc is exactly eleven ASCII digits.
// No trimming or normalization is applied.
func IsValidFormat(tc string) bool {
	return identifierPattern.MatchString(tc)
}

// Mask keeps the first three and last two characters of an eleven character
// identifier. Anything else, nil included, becomes "***".
func Mask(tc *string) string {
	if tc == nil {
		return maskPlaceholder
	}
	return MaskString(*tc)
}

// MaskString is Mask for a non-nil value.
func MaskString(tc string) string {
	if len(tc) != IdentifierLength {
		return maskPlaceholder
	}
	return tc[:3] + "******" + tc[9:]
}

// HashIdentifier returns hex(sha256("{salt}:{tc}")). It does not validate tc.
func HashIdentifier(salt, tc string) string {
	sum := sha256.Sum256([]byte(salt + ":" + tc))
	return hex.EncodeToString(sum[:])
}

// IsHashedValue reports whether stored looks like a HashIdentifier output.
func IsHashedValue(stored string) bool {
	return hashedPattern.MatchString(stored)
}

// IdentifierStatusOf classifies a stored identifier column value.
func IdentifierStatusOf(stored *string) IdentifierStatus {
	switch {
	case stored == nil || *stored == "":
		return IdentifierStatusNone
	case len(*stored) == HashedIdentifierLength:
		return IdentifierStatusHashed
	default:
		return IdentifierStatusLegacy
	}
}
