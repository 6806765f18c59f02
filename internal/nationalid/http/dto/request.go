// Package dto holds the JSON request and response bodies of the beneficiary,
// dependent, audit log and legacy status endpoints.
//
// Request validation checks shape only. The TC number format is checked by
// the use cases after authorization so an unauthorized caller learns nothing
// about the value it sent.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	nationalidDomain "github.com/dernekportal/tcguard/internal/nationalid/domain"
	customValidation "github.com/dernekportal/tcguard/internal/validation"
)

// CreateBeneficiaryRequest is the body of POST /v1/beneficiaries.
type CreateBeneficiaryRequest struct {
	Name         string  `json:"name"`
	TCNo         string  `json:"tc_no"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	District     string  `json:"district"`
	Neighborhood string  `json:"neighborhood"`
	FamilySize   int     `json:"family_size"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}

// Validate checks the request shape.
func (r *CreateBeneficiaryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Email, customValidation.Email, validation.Length(3, 255)),
		validation.Field(&r.Phone, validation.Length(0, 32)),
		validation.Field(&r.FamilySize, validation.Min(0), validation.Max(50)),
	)
}

// ToInput maps the request to the use case input.
func (r *CreateBeneficiaryRequest) ToInput() *nationalidDomain.CreateBeneficiaryInput {
	return &nationalidDomain.CreateBeneficiaryInput{
		Name:         r.Name,
		TCNo:         r.TCNo,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		District:     r.District,
		Neighborhood: r.Neighborhood,
		FamilySize:   r.FamilySize,
		Status:       nationalidDomain.BeneficiaryStatus(r.Status),
		Notes:        r.Notes,
	}
}

// UpdateBeneficiaryRequest is the body of PATCH /v1/beneficiaries/:id.
// Omitted fields are left untouched; "tc_no": "" clears the identifier.
type UpdateBeneficiaryRequest struct {
	Name         *string `json:"name"`
	TCNo         *string `json:"tc_no"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	District     *string `json:"district"`
	Neighborhood *string `json:"neighborhood"`
	FamilySize   *int    `json:"family_size"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
}

// Validate checks the request shape.
func (r *UpdateBeneficiaryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Email, customValidation.Email, validation.Length(3, 255)),
		validation.Field(&r.Phone, validation.Length(0, 32)),
		validation.Field(&r.FamilySize, validation.NilOrNotEmpty, validation.Min(1), validation.Max(50)),
	)
}

// ToInput maps the request to the use case input.
func (r *UpdateBeneficiaryRequest) ToInput() *nationalidDomain.UpdateBeneficiaryInput {
	input := &nationalidDomain.UpdateBeneficiaryInput{
		Name:         r.Name,
		TCNo:         r.TCNo,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		District:     r.District,
		Neighborhood: r.Neighborhood,
		FamilySize:   r.FamilySize,
		Notes:        r.Notes,
	}
	if r.Status != nil {
		status := nationalidDomain.BeneficiaryStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// CreateDependentRequest is the body of POST /v1/beneficiaries/:id/dependents.
type CreateDependentRequest struct {
	Name          string  `json:"name"`
	Relationship  string  `json:"relationship"`
	BirthDate     *string `json:"birth_date"`
	Gender        *string `json:"gender"`
	TCNo          string  `json:"tc_no"`
	Phone         *string `json:"phone"`
	HasDisability bool    `json:"has_disability"`
	Notes         *string `json:"notes"`
}

// Validate checks the request shape.
func (r *CreateDependentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Relationship, validation.Required, customValidation.NotBlank, validation.Length(1, 32)),
		validation.Field(&r.BirthDate, validation.Date("2006-01-02")),
		validation.Field(&r.Gender, validation.Length(0, 16)),
		validation.Field(&r.Phone, validation.Length(0, 32)),
	)
}

// ToInput maps the request to the use case input for beneficiaryID.
func (r *CreateDependentRequest) ToInput(beneficiaryID uuid.UUID) *nationalidDomain.CreateDependentInput {
	return &nationalidDomain.CreateDependentInput{
		BeneficiaryID: beneficiaryID,
		Name:          r.Name,
		Relationship:  r.Relationship,
		BirthDate:     r.BirthDate,
		Gender:        r.Gender,
		TCNo:          r.TCNo,
		Phone:         r.Phone,
		HasDisability: r.HasDisability,
		Notes:         r.Notes,
	}
}

// UpdateDependentRequest is the body of PATCH /v1/dependents/:id.
type UpdateDependentRequest struct {
	Name          *string `json:"name"`
	Relationship  *string `json:"relationship"`
	BirthDate     *string `json:"birth_date"`
	Gender        *string `json:"gender"`
	TCNo          *string `json:"tc_no"`
	Phone         *string `json:"phone"`
	HasDisability *bool   `json:"has_disability"`
	Notes         *string `json:"notes"`
}

// Validate checks the request shape.
func (r *UpdateDependentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Relationship, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&r.BirthDate, validation.Date("2006-01-02")),
		validation.Field(&r.Gender, validation.Length(0, 16)),
		validation.Field(&r.Phone, validation.Length(0, 32)),
	)
}

// ToInput maps the request to the use case input.
func (r *UpdateDependentRequest) ToInput() *nationalidDomain.UpdateDependentInput {
	return &nationalidDomain.UpdateDependentInput{
		Name:          r.Name,
		Relationship:  r.Relationship,
		BirthDate:     r.BirthDate,
		Gender:        r.Gender,
		TCNo:          r.TCNo,
		Phone:         r.Phone,
		HasDisability: r.HasDisability,
		Notes:         r.Notes,
	}
}

// SearchByIdentifierRequest is the body of the search-by-tc endpoints. The
// identifier travels in the body so it never reaches access logs.
type SearchByIdentifierRequest struct {
	TCNo string `json:"tc_no"`
}

// Validate checks the request shape.
func (r *SearchByIdentifierRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TCNo, validation.Required),
	)
}
