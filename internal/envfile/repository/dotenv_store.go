// Package repository provides the concrete collaborators of the env-value
// pipeline: the dotenv file store, the OS process environment, and in-memory
// fakes for tests.
package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotenvStore implements the FileStore interface over a dotenv file.
//
// Parsing and serialization are delegated to godotenv, so line syntax,
// quoting, and comment handling follow the usual dotenv conventions. Rewrites
// go through a temporary file and rename, so a crash mid-write cannot leave a
// truncated env file behind. Note that godotenv.Marshal sorts entries and
// drops comments, so a hand-edited file loses its comments on the first write.
type DotenvStore struct {
	path string
}

// NewDotenvStore creates a DotenvStore backed by the file at path.
// The file does not have to exist yet; it is created on first write.
func NewDotenvStore(path string) *DotenvStore {
	return &DotenvStore{path: path}
}

// Read returns all entries of the env file. A missing file yields an empty
// map so a fresh project works without touching the filesystem first.
func (s *DotenvStore) Read() (map[string]string, error) {
	entries, err := godotenv.Read(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return entries, nil
}

// Upsert writes or replaces a single entry, rewriting the whole file.
func (s *DotenvStore) Upsert(name, value string) error {
	entries, err := s.Read()
	if err != nil {
		return err
	}

	entries[name] = value
	return s.WriteAll(entries)
}

// WriteAll replaces the whole file with the given entries via a temporary
// file and an atomic rename.
func (s *DotenvStore) WriteAll(entries map[string]string) error {
	content, err := godotenv.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize env entries: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}

// Path returns the file path backing the store.
func (s *DotenvStore) Path() string {
	return s.path
}
