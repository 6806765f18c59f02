package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	nationalidService "github.com/dernekportal/tcguard/internal/nationalid/service"
)

// identifierAccess bundles what every guarded identifier operation needs.
type identifierAccess struct {
	guard  AccessGuard
	hasher nationalidService.Hasher
	audit  nationalidService.AuditLogger
}

// hashNew validates tc, hashes it and writes the audit entry for action on
// behalf of an already authorized caller. It runs outside any transaction so
// the audit entry survives a rejected write.
func (a *identifierAccess) hashNew(
	ctx context.Context,
	caller *nationalidDomain.Caller,
	tc, action string,
) (string, error) {
	if !nationalidDomain.IsValidFormat(tc) {
		return "", nationalidDomain.ErrInvalidIdentifierFormat
	}

	hashed, err := a.hasher.Hash(ctx, tc)
	if err != nil {
		return "", err
	}

	a.audit.Log(ctx, nationalidDomain.AuditEntry{
		Action:           action,
		Caller:           *caller,
		MaskedIdentifier: nationalidDomain.MaskString(tc),
	})
	return hashed, nil
}

// clear writes the audit entry for removing current.
func (a *identifierAccess) clear(
	ctx context.Context,
	caller *nationalidDomain.Caller,
	current *string,
	action string,
) {
	a.audit.Log(ctx, nationalidDomain.AuditEntry{
		Action:           action,
		Caller:           *caller,
		MaskedIdentifier: nationalidDomain.Mask(current),
	})
}

// identifierChange is an authorized, audited change to a stored identifier.
// A nil hashed with clearing false means the identifier is untouched.
type identifierChange struct {
	hashed   *string
	raw      string
	clearing bool
}

// change authorizes claim and audits the identifier change requested by tc on
// a record currently storing current. A nil tc leaves the identifier alone and
// skips the guard; "" clears it. validate, when set, runs after authorization
// and before the identifier is hashed.
func (a *identifierAccess) change(
	ctx context.Context,
	claim *nationalidDomain.Caller,
	tc, current *string,
	updateAction, clearAction string,
	validate func() error,
) (identifierChange, error) {
	if tc == nil {
		if validate != nil {
			return identifierChange{}, validate()
		}
		return identifierChange{}, nil
	}

	caller, err := a.guard.Authorize(ctx, claim)
	if err != nil {
		return identifierChange{}, err
	}
	if validate != nil {
		if err := validate(); err != nil {
			return identifierChange{}, err
		}
	}

	if *tc == "" {
		a.clear(ctx, caller, current, clearAction)
		return identifierChange{clearing: true}, nil
	}

	hashed, err := a.hashNew(ctx, caller, *tc, updateAction)
	if err != nil {
		return identifierChange{}, err
	}
	return identifierChange{hashed: &hashed, raw: *tc}, nil
}

// resolve returns the identifier to store in place of current, checking
// uniqueness when the change introduces a new value.
func (c identifierChange) resolve(
	ctx context.Context,
	owner func(ctx context.Context, value string) (uuid.UUID, error),
	self uuid.UUID,
	current *string,
) (*string, error) {
	if c.clearing {
		return nil, nil
	}
	if c.hashed == nil {
		return current, nil
	}
	if current == nil || *current != *c.hashed {
		if err := ensureIdentifierAvailable(ctx, owner, *c.hashed, c.raw, self); err != nil {
			return nil, err
		}
	}
	return c.hashed, nil
}

// findByIdentifier is the dual-read lookup: the hashed value first, then the
// raw value for records not yet migrated. Legacy records are returned as
// stored; migration is a separate job.
func findByIdentifier[T any](
	ctx context.Context,
	access *identifierAccess,
	lookup func(ctx context.Context, value string) (T, error),
	tc, action string,
) (T, error) {
	var zero T

	caller, err := access.guard.RequireAccess(ctx)
	if err != nil {
		return zero, err
	}
	if !nationalidDomain.IsValidFormat(tc) {
		return zero, nationalidDomain.ErrInvalidIdentifierFormat
	}

	hashed, err := access.hasher.Hash(ctx, tc)
	if err != nil {
		return zero, err
	}

	entry := nationalidDomain.AuditEntry{
		Action:           action,
		Caller:           *caller,
		MaskedIdentifier: nationalidDomain.MaskString(tc),
	}

	record, err := lookup(ctx, hashed)
	if err == nil {
		access.audit.Log(ctx, entry)
		return record, nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return zero, err
	}

	record, err = lookup(ctx, tc)
	if err != nil {
		return zero, err
	}

	entry.Extra = nationalidDomain.LegacyLookupExtra
	access.audit.Log(ctx, entry)
	return record, nil
}

// ensureIdentifierAvailable fails with ErrDuplicateIdentifier when a record
// other than self stores the hashed value, or still stores the raw value in
// plaintext. Pass uuid.Nil as self on create.
func ensureIdentifierAvailable(
	ctx context.Context,
	owner func(ctx context.Context, value string) (uuid.UUID, error),
	hashed, raw string,
	self uuid.UUID,
) error {
	for _, value := range []string{hashed, raw} {
		id, err := owner(ctx, value)
		if apperrors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if id != self {
			return nationalidDomain.ErrDuplicateIdentifier
		}
	}
	return nil
}
