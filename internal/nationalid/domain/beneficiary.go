package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BeneficiaryStatus is the lifecycle state of a beneficiary record.
type BeneficiaryStatus string

const (
	BeneficiaryStatusDraft    BeneficiaryStatus = "TASLAK"
	BeneficiaryStatusActive   BeneficiaryStatus = "AKTIF"
	BeneficiaryStatusInactive BeneficiaryStatus = "PASIF"
	BeneficiaryStatusDeleted  BeneficiaryStatus = "SILINDI"
)

// IsValid reports whether s is a known status.
func (s BeneficiaryStatus) IsValid() bool {
	switch s {
	case BeneficiaryStatusDraft, BeneficiaryStatusActive, BeneficiaryStatusInactive, BeneficiaryStatusDeleted:
		return true
	}
	return false
}

// ParseBeneficiaryStatus converts s into a status. Empty means draft.
func ParseBeneficiaryStatus(s string) (BeneficiaryStatus, error) {
	if s == "" {
		return BeneficiaryStatusDraft, nil
	}
	status := BeneficiaryStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Beneficiary is an aid recipient. TCNo holds the stored identifier: a hash,
// a legacy plaintext value, or nil.
type Beneficiary struct {
	ID           uuid.UUID
	Name         string
	TCNo         *string
	Phone        string
	Email        *string
	Address      string
	City         string
	District     string
	Neighborhood string
	FamilySize   int
	Status       BeneficiaryStatus
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetID returns the record id.
func (b *Beneficiary) GetID() uuid.UUID { return b.ID }

// StoredIdentifier returns the stored identifier column.
func (b *Beneficiary) StoredIdentifier() *string { return b.TCNo }

// CreateBeneficiaryInput holds the fields of a new beneficiary. TCNo is the
// raw identifier and is required.
type CreateBeneficiaryInput struct {
	Name         string
	TCNo         string
	Phone        string
	Email        *string
	Address      string
	City         string
	District     string
	Neighborhood string
	FamilySize   int
	Status       BeneficiaryStatus
	Notes        *string
}

// UpdateBeneficiaryInput is a partial update. Nil fields are left untouched.
// TCNo set to "" clears the identifier.
type UpdateBeneficiaryInput struct {
	Name         *string
	TCNo         *string
	Phone        *string
	Email        *string
	Address      *string
	City         *string
	District     *string
	Neighborhood *string
	FamilySize   *int
	Status       *BeneficiaryStatus
	Notes        *string
}

// Apply copies the non-identifier fields of input onto b.
func (input *UpdateBeneficiaryInput) Apply(b *Beneficiary) {
	if input.Name != nil {
		b.Name = *input.Name
	}
	if input.Phone != nil {
		b.Phone = *input.Phone
	}
	if input.Email != nil {
		b.Email = input.Email
	}
	if input.Address != nil {
		b.Address = *input.Address
	}
	if input.City != nil {
		b.City = *input.City
	}
	if input.District != nil {
		b.District = *input.District
	}
	if input.Neighborhood != nil {
		b.Neighborhood = *input.Neighborhood
	}
	if input.FamilySize != nil {
		b.FamilySize = *input.FamilySize
	}
	if input.Status != nil {
		b.Status = *input.Status
	}
	if input.Notes != nil {
		b.Notes = input.Notes
	}
}
