// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/envseal/internal/errors"
)

var (
	// envVarNameRegex matches POSIX portable environment-variable names.
	envVarNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// EnvVarName validates that a string is a portable environment-variable name:
// a letter or underscore followed by letters, digits, or underscores.
var EnvVarName = validation.NewStringRuleWithError(
	func(s string) bool {
		return envVarNameRegex.MatchString(s)
	},
	validation.NewError(
		"validation_env_var_name",
		"must be a valid environment variable name ([A-Za-z_][A-Za-z0-9_]*)",
	),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
