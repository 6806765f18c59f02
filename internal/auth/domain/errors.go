package domain

import (
	"github.com/dernekportal/tcguard/internal/errors"
)

// User directory and token errors.
var (
	// ErrUserNotFound indicates no user exists with the given email.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the email is already registered.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrUserInactive indicates the account has been disabled.
	ErrUserInactive = errors.Wrap(errors.ErrForbidden, "user is inactive")

	// ErrInvalidToken indicates a malformed, tampered or wrongly signed token.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token has expired")

	// ErrUnknownRole indicates a role outside the known set.
	ErrUnknownRole = errors.Wrap(errors.ErrInvalidInput, "unknown role")
)
