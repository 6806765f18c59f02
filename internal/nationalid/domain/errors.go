package domain

import (
	"github.com/dernekportal/tcguard/internal/errors"
)

// National identifier errors.
var (
	// ErrInvalidIdentifierFormat indicates the input is not eleven ASCII digits.
	ErrInvalidIdentifierFormat = errors.WithKind(errors.ErrInvalidInput, "Invalid TC number format")

	// ErrAuthenticationRequired indicates no active caller could be resolved.
	ErrAuthenticationRequired = errors.WithKind(errors.ErrUnauthorized, "Unauthorized: Authentication required")

	// ErrInsufficientPermissions indicates the caller's role may not access identifiers.
	ErrInsufficientPermissions = errors.WithKind(errors.ErrForbidden, "Unauthorized: Insufficient permissions")

	// ErrDuplicateIdentifier indicates another record already holds the identifier.
	ErrDuplicateIdentifier = errors.Wrap(errors.ErrConflict, "record with this TC number already exists")

	// ErrBeneficiaryNotFound indicates the beneficiary does not exist.
	ErrBeneficiaryNotFound = errors.Wrap(errors.ErrNotFound, "beneficiary not found")

	// ErrDependentNotFound indicates the dependent does not exist.
	ErrDependentNotFound = errors.Wrap(errors.ErrNotFound, "dependent not found")

	// ErrSettingNotFound indicates the settings store has no such entry.
	ErrSettingNotFound = errors.Wrap(errors.ErrNotFound, "setting not found")

	// ErrSettingAlreadyExists indicates the category and key pair is taken.
	ErrSettingAlreadyExists = errors.Wrap(errors.ErrConflict, "setting already exists")

	// ErrSaltAlreadyConfigured indicates the hashing salt exists and cannot be replaced.
	ErrSaltAlreadyConfigured = errors.Wrap(errors.ErrConflict, "TC hash salt is already configured")

	// ErrNoIdentity indicates the request carries no authenticated identity.
	ErrNoIdentity = errors.Wrap(errors.ErrUnauthorized, "no authenticated identity")

	// ErrCallerNotFound indicates the identity matches no user in the directory.
	ErrCallerNotFound = errors.Wrap(errors.ErrUnauthorized, "caller not found in user directory")

	// ErrCallerInactive indicates the identity matches a disabled user.
	ErrCallerInactive = errors.Wrap(errors.ErrUnauthorized, "caller is inactive")

	// ErrInvalidStatus indicates an unknown beneficiary status.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid beneficiary status")

	// ErrSignatureInvalid indicates an audit log signature does not match its content.
	ErrSignatureInvalid = errors.New("audit log signature is invalid")
)
