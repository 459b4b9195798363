// ABOUTME: Version store with per-document histories and persistence
// ABOUTME: Appends immutable snapshots and serves ordered lookups

package revision

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nainya/revstore/internal/logger"
	"github.com/nainya/revstore/pkg/diff"
)

// Store owns the document -> ordered history table and its backing
// storage. Mutations are serialized per document id; operations on
// different documents proceed concurrently.
type Store struct {
	mu        sync.Mutex // guards histories and locks tables
	histories map[string][]TextVersion
	locks     map[string]*sync.Mutex

	backend Backend
	engine  *diff.Engine
	log     *logger.Logger
}

// NewStore creates a version store over the given backend. A nil
// engine selects the default comparison cap; a nil logger selects the
// global logger.
func NewStore(backend Backend, engine *diff.Engine, log *logger.Logger) *Store {
	if engine == nil {
		engine = diff.NewEngine(0)
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Store{
		histories: make(map[string][]TextVersion),
		locks:     make(map[string]*sync.Mutex),
		backend:   backend,
		engine:    engine,
		log:       log,
	}
}

// Save appends a new immutable snapshot to the document's history and
// rewrites the persisted history in full. Identical content saved twice
// creates two distinct entries. A persistence fault is logged and
// returned wrapped in ErrPersistence alongside the saved version; the
// in-memory history is already updated.
func (s *Store) Save(documentID, content, label, style string) (*TextVersion, error) {
	if err := ValidateDocumentID(documentID); err != nil {
		return nil, err
	}

	lock := s.docLock(documentID)
	lock.Lock()
	defer lock.Unlock()

	versions := s.loadLocked(documentID)

	timestamp := time.Now().Format(time.RFC3339Nano)
	v := TextVersion{
		VersionID: deriveVersionID(content, timestamp),
		Content:   content,
		Timestamp: timestamp,
		Label:     optional(label),
		Style:     optional(style),
	}

	versions = append(versions, v)
	s.setHistory(documentID, versions)

	if err := s.backend.Store(documentID, versions); err != nil {
		s.log.Error("Failed to persist version history").
			Str("document_id", documentID).
			Str("version_id", v.VersionID).
			Err(err).
			Send()
		return &v, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &v, nil
}

// List returns the document's versions in insertion order. A document
// not resident in memory is loaded from the backend first; missing or
// corrupt persisted state degrades to an empty history.
func (s *Store) List(documentID string) ([]TextVersion, error) {
	if err := ValidateDocumentID(documentID); err != nil {
		return nil, err
	}

	lock := s.docLock(documentID)
	lock.Lock()
	defer lock.Unlock()

	versions := s.loadLocked(documentID)
	out := make([]TextVersion, len(versions))
	copy(out, versions)
	return out, nil
}

// Get returns the version with the given id, or nil if the document has
// no such version. An absent version is not an error.
func (s *Store) Get(documentID, versionID string) (*TextVersion, error) {
	if err := ValidateDocumentID(documentID); err != nil {
		return nil, err
	}
	if versionID == "" {
		return nil, ErrInvalidVersionID
	}

	lock := s.docLock(documentID)
	lock.Lock()
	defer lock.Unlock()

	return s.findLocked(documentID, versionID), nil
}

// CompareVersions resolves both version ids and compares their contents
// at char granularity. Returns nil with no error if either id is absent.
func (s *Store) CompareVersions(documentID, versionIDA, versionIDB string) (*diff.Result, error) {
	if err := ValidateDocumentID(documentID); err != nil {
		return nil, err
	}
	if versionIDA == "" || versionIDB == "" {
		return nil, ErrInvalidVersionID
	}

	lock := s.docLock(documentID)
	lock.Lock()
	versionA := s.findLocked(documentID, versionIDA)
	versionB := s.findLocked(documentID, versionIDB)
	lock.Unlock()

	if versionA == nil || versionB == nil {
		return nil, nil
	}

	return s.engine.Compare(versionA.Content, versionB.Content, diff.Char)
}

// Clear removes the in-memory history and deletes the persisted state.
// Idempotent: clearing an absent document succeeds. A backend fault is
// logged and absorbed.
func (s *Store) Clear(documentID string) error {
	if err := ValidateDocumentID(documentID); err != nil {
		return err
	}

	lock := s.docLock(documentID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	delete(s.histories, documentID)
	s.mu.Unlock()

	if err := s.backend.Delete(documentID); err != nil {
		s.log.Warn("Failed to delete persisted history").
			Str("document_id", documentID).
			Err(err).
			Send()
	}
	return nil
}

// Stats reports the resident document and version counts
func (s *Store) Stats() (documents, versions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, history := range s.histories {
		versions += len(history)
	}
	return len(s.histories), versions
}

// ValidateDocumentID rejects identifiers that are empty or unsafe as a
// storage key (path separators, parent references)
func ValidateDocumentID(documentID string) error {
	if documentID == "" ||
		strings.ContainsAny(documentID, `/\`) ||
		strings.Contains(documentID, "..") {
		return ErrInvalidDocumentID
	}
	return nil
}

// docLock returns the mutex serializing mutations for one document
func (s *Store) docLock(documentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[documentID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[documentID] = lock
	}
	return lock
}

// loadLocked returns the resident history, loading it from the backend
// on first touch. Caller holds the document lock. Read faults degrade
// to an empty history.
func (s *Store) loadLocked(documentID string) []TextVersion {
	s.mu.Lock()
	versions, resident := s.histories[documentID]
	s.mu.Unlock()
	if resident {
		return versions
	}

	versions, err := s.backend.Load(documentID)
	if err != nil {
		s.log.Warn("Failed to load version history, starting empty").
			Str("document_id", documentID).
			Err(err).
			Send()
		versions = nil
	}

	s.setHistory(documentID, versions)
	return versions
}

func (s *Store) findLocked(documentID, versionID string) *TextVersion {
	for _, v := range s.loadLocked(documentID) {
		if v.VersionID == versionID {
			found := v
			return &found
		}
	}
	return nil
}

func (s *Store) setHistory(documentID string, versions []TextVersion) {
	s.mu.Lock()
	if versions == nil {
		versions = []TextVersion{}
	}
	s.histories[documentID] = versions
	s.mu.Unlock()
}

// deriveVersionID hashes (content, timestamp) so that distinct saves
// normally get distinct ids. Two saves of identical content within the
// same timestamp resolution would collide; histories keep both entries.
func deriveVersionID(content, timestamp string) string {
	sum := md5.Sum([]byte(content + timestamp))
	return hex.EncodeToString(sum[:])[:12]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
