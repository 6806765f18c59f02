package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dependent is a household member of a beneficiary. TCNo is optional.
type Dependent struct {
	ID            uuid.UUID
	BeneficiaryID uuid.UUID
	Name          string
	Relationship  string
	BirthDate     *string
	Gender        *string
	TCNo          *string
	Phone         *string
	HasDisability bool
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GetID returns the record id.
func (d *Dependent) GetID() uuid.UUID { return d.ID }

// StoredIdentifier returns the stored identifier column.
func (d *Dependent) StoredIdentifier() *string { return d.TCNo }

// CreateDependentInput holds the fields of a new dependent. An empty TCNo
// creates the dependent without an identifier.
type CreateDependentInput struct {
	BeneficiaryID uuid.UUID
	Name          string
	Relationship  string
	BirthDate     *string
	Gender        *string
	TCNo          string
	Phone         *string
	HasDisability bool
	Notes         *string
}

// UpdateDependentInput is a partial update with the same TCNo rules as
// UpdateBeneficiaryInput.
type UpdateDependentInput struct {
	Name          *string
	Relationship  *string
	BirthDate     *string
	Gender        *string
	TCNo          *string
	Phone         *string
	HasDisability *bool
	Notes         *string
}

// Apply copies the non-identifier fields of input onto d.
func (input *UpdateDependentInput) Apply(d *Dependent) {
	if input.Name != nil {
		d.Name = *input.Name
	}
	if input.Relationship != nil {
		d.Relationship = *input.Relationship
	}
	if input.BirthDate != nil {
		d.BirthDate = input.BirthDate
	}
	if input.Gender != nil {
		d.Gender = input.Gender
	}
	if input.Phone != nil {
		d.Phone = input.Phone
	}
	if input.HasDisability != nil {
		d.HasDisability = *input.HasDisability
	}
	if input.Notes != nil {
		d.Notes = input.Notes
	}
}
