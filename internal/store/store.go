// Package store provides a generic whole-file JSON document store.
//
// A Store persists one collection in one file. Load reads and
// deserializes the entire file; Save serializes the entire collection
// and overwrites the file in a single write. There is no locking
// between Load and Save: callers compose load → mutate → save, and
// concurrent cycles against the same file resolve as last-writer-wins.
package store

import (
	"encoding/json"
	"os"
)

// Store persists a collection of type T in a single JSON file.
//
// T is expected to be a JSON-serializable collection (a slice or a
// struct of slices). The zero value of T is the empty collection.
type Store[T any] struct {
	path string
}

// New creates a store backed by the file at path.
// The file is not created until the first Save.
func New[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the backing file and deserializes the collection.
//
// Any failure — file absent, unreadable, or malformed JSON — yields the
// empty collection. This is the initialization default, not an error
// path.
func (s *Store[T]) Load() T {
	var collection T

	data, err := os.ReadFile(s.path)
	if err != nil {
		return collection
	}
	if err := json.Unmarshal(data, &collection); err != nil {
		var empty T
		return empty
	}
	return collection
}

// Save serializes the collection and overwrites the backing file.
//
// The write is a plain whole-file rewrite with no temp-file-then-rename
// discipline; a crash mid-write can leave a truncated file, which the
// next Load treats as the empty collection.
func (s *Store[T]) Save(collection T) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
