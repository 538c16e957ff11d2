package repository

import (
	"sync"
)

// MemoryStore is an in-memory FileStore used in tests and as a fake for
// library consumers who want to exercise the pipeline without touching disk.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]string
	path    string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]string),
		path:    "memory://env",
	}
}

// Read returns a copy of the stored entries.
func (s *MemoryStore) Read() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make(map[string]string, len(s.entries))
	for name, value := range s.entries {
		entries[name] = value
	}
	return entries, nil
}

// Upsert writes or replaces a single entry.
func (s *MemoryStore) Upsert(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[name] = value
	return nil
}

// WriteAll replaces all entries.
func (s *MemoryStore) WriteAll(entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]string, len(entries))
	for name, value := range entries {
		s.entries[name] = value
	}
	return nil
}

// Path returns a synthetic path identifying the store.
func (s *MemoryStore) Path() string {
	return s.path
}

// MemoryEnv is an in-memory ProcessEnv used in tests so the pipeline can be
// exercised without mutating the real process environment.
type MemoryEnv struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryEnv creates an empty MemoryEnv.
func NewMemoryEnv() *MemoryEnv {
	return &MemoryEnv{values: make(map[string]string)}
}

// Lookup returns the value of the variable and whether it is present.
func (e *MemoryEnv) Lookup(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	value, exists := e.values[name]
	return value, exists
}

// Set stores the variable.
func (e *MemoryEnv) Set(name, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.values[name] = value
	return nil
}
