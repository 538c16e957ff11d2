// Package domain contains the core types for environment-file entries.
package domain

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/allisson/envseal/internal/validation"
)

// Entry represents a single (name, value) pair in an environment file.
//
// The value is either plaintext or a sealed envelope string; the entry itself
// does not distinguish them. Plaintext values only live in memory transiently
// during sealing and opening; the durable form in the file is whatever the
// store was handed.
type Entry struct {
	Name  string
	Value string
}

// Validate checks that the entry name is a portable environment-variable name.
// Returns an error wrapping ErrInvalidInput when it is not.
func (e Entry) Validate() error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required.Error("must not be empty"), appvalidation.EnvVarName),
	)
	return appvalidation.WrapValidationError(err)
}
