package usecase

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	apperrors "github.com/dernekportal/tcguard/internal/errors"
	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
)

// passthroughTxManager runs fn directly.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryUserDirectory struct {
	users map[string]*authDomain.User
}

func newMemoryUserDirectory(users ...*authDomain.User) *memoryUserDirectory {
	d := &memoryUserDirectory{users: make(map[string]*authDomain.User)}
	for _, u := range users {
		d.users[u.Email] = u
	}
	return d
}

func (d *memoryUserDirectory) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	user, ok := d.users[email]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}
	return user, nil
}

type memoryAuditRecorder struct {
	mu      sync.Mutex
	entries []nationalidDomain.AuditEntry
}

func (r *memoryAuditRecorder) Record(ctx context.Context, entry nationalidDomain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryAuditRecorder) Entries() []nationalidDomain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// memoryBeneficiaryRepository keeps beneficiaries in a map and enforces the
// unique identifier index.
type memoryBeneficiaryRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]*nationalidDomain.Beneficiary
}

func newMemoryBeneficiaryRepository() *memoryBeneficiaryRepository {
	return &memoryBeneficiaryRepository{records: make(map[uuid.UUID]*nationalidDomain.Beneficiary)}
}

func cloneBeneficiary(b *nationalidDomain.Beneficiary) *nationalidDomain.Beneficiary {
	clone := *b
	if b.TCNo != nil {
		tc := *b.TCNo
		clone.TCNo = &tc
	}
	return &clone
}

func (r *memoryBeneficiaryRepository) ownerLocked(value string) (uuid.UUID, bool) {
	for id, b := range r.records {
		if b.TCNo != nil && *b.TCNo == value {
			return id, true
		}
	}
	return uuid.Nil, false
}

func (r *memoryBeneficiaryRepository) sortedLocked() []*nationalidDomain.Beneficiary {
	out := make([]*nationalidDomain.Beneficiary, 0, len(r.records))
	for _, b := range r.records {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *nationalidDomain.Beneficiary) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out
}

func (r *memoryBeneficiaryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *memoryBeneficiaryRepository) ListLegacy(
	ctx context.Context,
	afterID uuid.UUID,
	limit int,
) ([]nationalidDomain.LegacyIdentifier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []nationalidDomain.LegacyIdentifier
	for _, b := range r.sortedLocked() {
		if len(out) == limit {
			break
		}
		if bytes.Compare(b.ID[:], afterID[:]) <= 0 || b.TCNo == nil || !nationalidDomain.IsValidFormat(*b.TCNo) {
			continue
		}
		out = append(out, nationalidDomain.LegacyIdentifier{ID: b.ID, Value: *b.TCNo})
	}
	return out, nil
}

func (r *memoryBeneficiaryRepository) CountLegacy(ctx context.Context) (int64, error) {
	legacy, err := r.ListLegacy(ctx, uuid.Nil, r.Len())
	return int64(len(legacy)), err
}

func (r *memoryBeneficiaryRepository) ReplaceIdentifier(
	ctx context.Context,
	id uuid.UUID,
	oldValue, newValue string,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.records[id]
	if !ok || b.TCNo == nil || *b.TCNo != oldValue {
		return false, nil
	}
	if owner, taken := r.ownerLocked(newValue); taken && owner != id {
		return false, nationalidDomain.ErrDuplicateIdentifier
	}
	b.TCNo = &newValue
	return true, nil
}

func (r *memoryBeneficiaryRepository) IdentifierOwner(ctx context.Context, value string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ownerLocked(value); ok {
		return id, nil
	}
	return uuid.Nil, nationalidDomain.ErrBeneficiaryNotFound
}

func (r *memoryBeneficiaryRepository) Create(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if beneficiary.TCNo != nil {
		if _, taken := r.ownerLocked(*beneficiary.TCNo); taken {
			return nationalidDomain.ErrDuplicateIdentifier
		}
	}
	r.records[beneficiary.ID] = cloneBeneficiary(beneficiary)
	return nil
}

func (r *memoryBeneficiaryRepository) Update(ctx context.Context, beneficiary *nationalidDomain.Beneficiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[beneficiary.ID]; !ok {
		return nationalidDomain.ErrBeneficiaryNotFound
	}
	if beneficiary.TCNo != nil {
		if owner, taken := r.ownerLocked(*beneficiary.TCNo); taken && owner != beneficiary.ID {
			return nationalidDomain.ErrDuplicateIdentifier
		}
	}
	r.records[beneficiary.ID] = cloneBeneficiary(beneficiary)
	return nil
}

func (r *memoryBeneficiaryRepository) Get(ctx context.Context, id uuid.UUID) (*nationalidDomain.Beneficiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.records[id]
	if !ok {
		return nil, nationalidDomain.ErrBeneficiaryNotFound
	}
	return cloneBeneficiary(b), nil
}

func (r *memoryBeneficiaryRepository) GetByIdentifier(
	ctx context.Context,
	value string,
) (*nationalidDomain.Beneficiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.ownerLocked(value)
	if !ok {
		return nil, nationalidDomain.ErrBeneficiaryNotFound
	}
	return cloneBeneficiary(r.records[id]), nil
}

func (r *memoryBeneficiaryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*nationalidDomain.Beneficiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := r.sortedLocked()
	if offset >= len(sorted) {
		return []*nationalidDomain.Beneficiary{}, nil
	}
	sorted = sorted[offset:min(offset+limit, len(sorted))]

	out := make([]*nationalidDomain.Beneficiary, 0, len(sorted))
	for _, b := range sorted {
		out = append(out, cloneBeneficiary(b))
	}
	return out, nil
}

func (r *memoryBeneficiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return nationalidDomain.ErrBeneficiaryNotFound
	}
	delete(r.records, id)
	return nil
}
