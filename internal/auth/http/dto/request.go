// Package dto holds the JSON request and response bodies of the token endpoint.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/dernekportal/tcguard/internal/validation"
)

// IssueTokenRequest is the body of POST /v1/token.
type IssueTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request credential
}

// Validate checks the request shape.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.Email, validation.Length(3, 255)),
		validation.Field(&r.Password, validation.Required, customValidation.NotBlank),
	)
}
