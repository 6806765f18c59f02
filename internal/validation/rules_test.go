package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/dernekportal/tcguard/internal/errors"
)

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      10,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	tests := []struct {
		name     string
		password interface{}
		errMsg   string
	}{
		{name: "valid password", password: "Dernek-Portal-2026"},
		{name: "too short", password: "Ab1!", errMsg: "password must be at least 10 characters"},
		{name: "missing uppercase", password: "dernekportal1!", errMsg: "uppercase letter"},
		{name: "missing lowercase", password: "DERNEKPORTAL1!", errMsg: "lowercase letter"},
		{name: "missing number", password: "DernekPortal!!", errMsg: "number"},
		{name: "missing special char", password: "DernekPortal12", errMsg: "special character"},
		{name: "not a string", password: 12345678901, errMsg: "password must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestStringRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    validation.Rule
		value   string
		wantErr bool
	}{
		{name: "email valid", rule: Email, value: "admin@dernek.org.tr"},
		{name: "email missing domain", rule: Email, value: "admin@", wantErr: true},
		{name: "no whitespace valid", rule: NoWhitespace, value: "Ayşe Yılmaz"},
		{name: "no whitespace trailing", rule: NoWhitespace, value: "Ayşe ", wantErr: true},
		{name: "not blank valid", rule: NotBlank, value: "x"},
		{name: "not blank spaces", rule: NotBlank, value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, tt.rule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("name: cannot be blank."))
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, "name: cannot be blank.: invalid input", err.Error())
}
