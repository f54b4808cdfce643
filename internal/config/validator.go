package config

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var cIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// isCIdent checks that a routine or type name can be emitted verbatim
func isCIdent(fl validator.FieldLevel) bool {
	return cIdentifier.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers custom validation functions with the validator.
func RegisterCustomValidators(validate *validator.Validate) error {
	return validate.RegisterValidation("cident", isCIdent)
}
