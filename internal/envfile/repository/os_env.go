package repository

import (
	"os"
)

// OSEnv implements the ProcessEnv interface over the real process
// environment table.
//
// The table is process-wide mutable state owned by the operating system, not
// by this type. Concurrent writers must serialize their own access.
type OSEnv struct{}

// NewOSEnv creates an OSEnv.
func NewOSEnv() *OSEnv {
	return &OSEnv{}
}

// Lookup returns the value of the variable and whether it is present.
func (o *OSEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set makes the variable visible to the current process and its children.
func (o *OSEnv) Set(name, value string) error {
	return os.Setenv(name, value)
}
