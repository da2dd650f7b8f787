package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = New()

// New returns the configured validator for intake forms.
func New() *validatorv10.Validate {
	return validatorv10.New(validatorv10.WithRequiredStructEnabled())
}

// Struct validates v against its field tags.
func Struct(v any) error {
	return validate.Struct(v)
}
