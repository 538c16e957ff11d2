package domain

import (
	"github.com/allisson/envseal/internal/errors"
)

// Environment-file operation error definitions.
var (
	// ErrEntryExists indicates a variable with the same name is already
	// present in the environment file. Sealing refuses to overwrite an
	// existing entry unless the caller explicitly forces it.
	ErrEntryExists = errors.Wrap(errors.ErrConflict, "entry already exists")

	// ErrEntryNotFound indicates the requested variable name is not present
	// in the environment file.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "entry not found")
)
