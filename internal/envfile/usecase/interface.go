// Package usecase defines the interfaces and implementations for the
// environment-value pipeline: sealing values into the environment file and
// restoring them into a process environment.
package usecase

import (
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// FileStore defines the interface for the durable environment-file store.
//
// The store owns line syntax, quoting, and comment handling; the pipeline
// only ever sees a name-to-string mapping. Stored strings may be sealed
// envelopes or plaintext, indistinguishable to the store itself.
type FileStore interface {
	// Read returns all entries in the file. A missing file yields an empty
	// map, not an error.
	Read() (map[string]string, error)

	// Upsert writes or replaces a single entry.
	Upsert(name, value string) error

	// WriteAll atomically replaces the whole file with the given entries.
	WriteAll(entries map[string]string) error

	// Path returns the file path backing the store.
	Path() string
}

// ProcessEnv defines the interface for the process environment table.
//
// The pipeline calls these but does not define their semantics, and it does
// not serialize writes: concurrent callers must coordinate their own access
// to the process-wide table.
type ProcessEnv interface {
	// Lookup returns the value of a variable and whether it is present.
	Lookup(name string) (string, bool)

	// Set makes a variable visible to the current process and its children.
	Set(name, value string) error
}

// EntryResult holds the outcome of opening a single stored entry.
// Exactly one of Plaintext and Err is meaningful.
type EntryResult struct {
	Plaintext string
	Err       error
}

// LoadReport describes what happened to each entry while loading an
// environment file into the process environment.
type LoadReport struct {
	// Applied lists sealed entries that were opened and set.
	Applied []string
	// Passthrough lists plaintext entries that were set unchanged.
	Passthrough []string
	// Failed maps entry names to the error that prevented them from being set.
	Failed map[string]error
}

// StatusEntry describes one entry of the environment file without exposing
// any secret material.
type StatusEntry struct {
	Name   string
	Sealed bool
	// Algorithm is the algorithm tag of a sealed entry, empty for plaintext
	// entries and for sealed entries whose envelope cannot be parsed.
	Algorithm cryptoDomain.Algorithm
}

// RekeyReport describes the outcome of re-encrypting an environment file
// under new session keys.
type RekeyReport struct {
	// Resealed lists sealed entries that were opened with the old keys and
	// sealed again with the new ones.
	Resealed []string
	// Passthrough lists plaintext entries carried over unchanged.
	Passthrough []string
}

// EnvUseCase defines the environment-value pipeline.
type EnvUseCase interface {
	// SetEncrypted seals a plaintext value and writes it to the file store.
	// It refuses to replace an existing entry with ErrEntryExists and never
	// touches the process environment.
	SetEncrypted(name, plaintext string, keys *cryptoDomain.SessionKeys) error

	// ForceSetEncrypted is SetEncrypted without the existing-entry check.
	ForceSetEncrypted(name, plaintext string, keys *cryptoDomain.SessionKeys) error

	// GetEncrypted reads a single entry from the file store and opens it.
	// Returns ErrEntryNotFound when the name is absent.
	GetEncrypted(name string, keys *cryptoDomain.SessionKeys) (string, error)

	// DecryptAll opens every entry of the given mapping, isolating failures
	// per entry instead of aborting the batch. Plaintext entries pass
	// through unchanged.
	DecryptAll(
		entries map[string]string,
		keys *cryptoDomain.SessionKeys,
	) map[string]EntryResult

	// Load reads the file store and applies its entries to the process
	// environment: plaintext entries pass through, sealed entries are
	// opened first, and per-entry failures are collected in the report.
	Load(keys *cryptoDomain.SessionKeys) (*LoadReport, error)

	// GetPlain looks a variable up in the process environment. An absent
	// name is reported through the bool, not an error.
	GetPlain(name string) (string, bool)

	// Status reports each entry's name, whether it is sealed, and its
	// algorithm tag. No secret material is included.
	Status() ([]StatusEntry, error)

	// Rekey opens every sealed entry with oldKeys, seals it again with
	// newKeys, and atomically rewrites the file. Any entry that fails to
	// open aborts the rekey before the file is touched.
	Rekey(oldKeys, newKeys *cryptoDomain.SessionKeys) (*RekeyReport, error)
}
