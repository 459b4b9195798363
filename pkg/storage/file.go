// ABOUTME: Flat-file history backend, one JSON file per document
// ABOUTME: Rewrites the full serialized history on every store

// Package storage provides persistence backends for version histories
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nainya/revstore/pkg/revision"
)

// FileBackend persists each document's history as <documentID>.json
// under a configured directory: an insertion-ordered JSON array of
// version objects, fully rewritten on every store.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the storage directory if needed
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the storage directory
func (f *FileBackend) Dir() string {
	return f.dir
}

// Load reads a document's history. A missing file is an empty history,
// not an error; an unreadable or unparsable file is an error.
func (f *FileBackend) Load(documentID string) ([]revision.TextVersion, error) {
	data, err := os.ReadFile(f.path(documentID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var versions []revision.TextVersion
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, fmt.Errorf("storage: corrupt history for %s: %w", documentID, err)
	}
	return versions, nil
}

// Store rewrites the document's history file with the full serialized
// list. The write goes through a temp file and rename so a fault never
// leaves a half-written history behind.
func (f *FileBackend) Store(documentID string, versions []revision.TextVersion) error {
	if versions == nil {
		versions = []revision.TextVersion{}
	}

	data, err := json.MarshalIndent(versions, "", "  ")
	if err != nil {
		return err
	}

	path := f.path(documentID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the document's history file; idempotent
func (f *FileBackend) Delete(documentID string) error {
	err := os.Remove(f.path(documentID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *FileBackend) path(documentID string) string {
	return filepath.Join(f.dir, documentID+".json")
}
