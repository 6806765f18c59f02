// Package service provides password hashing and bearer token signing for the
// user directory.
package service

import "time"

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash returns an encoded password hash suitable for storage.
	Hash(plainPassword string) (string, error)

	// Verify reports whether plainPassword matches the stored hash. Malformed
	// hashes report false.
	Verify(plainPassword, passwordHash string) bool
}

// TokenService issues and validates signed bearer tokens. The token subject
// is the user's email, which becomes the request identity's token identifier.
type TokenService interface {
	// Issue signs a token for subject and returns it with its expiry.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Validate checks signature, issuer and expiry and returns the subject.
	Validate(token string) (subject string, err error)
}
