// ABOUTME: BadgerDB history backend, one key per document
// ABOUTME: Embedded KV alternative to flat files behind the same interface

package storage

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/nainya/revstore/pkg/revision"
)

const historyKeyPrefix = "history/"

// BadgerConfig holds configuration for the embedded key-value backend
type BadgerConfig struct {
	Path       string // directory for database files
	InMemory   bool   // no disk persistence, for tests
	SyncWrites bool   // fsync on every write
}

// BadgerBackend stores serialized histories in BadgerDB. It satisfies
// the same revision.Backend contract as FileBackend, so stores can be
// switched without touching alignment code.
type BadgerBackend struct {
	db *badger.DB
}

// NewBadgerBackend opens a BadgerDB instance per the configuration.
// The caller must Close it when done.
func NewBadgerBackend(cfg BadgerConfig) (*BadgerBackend, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("storage: badger path is required")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerBackend{db: db}, nil
}

// Close closes the underlying database
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

// Load reads a document's history. A missing key is an empty history.
func (b *BadgerBackend) Load(documentID string) ([]revision.TextVersion, error) {
	var versions []revision.TextVersion

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(historyKey(documentID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &versions)
		})
	})
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// Store rewrites the document's serialized history under a single key
func (b *BadgerBackend) Store(documentID string, versions []revision.TextVersion) error {
	if versions == nil {
		versions = []revision.TextVersion{}
	}

	data, err := json.Marshal(versions)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(historyKey(documentID), data)
	})
}

// Delete removes the document's history key; idempotent
func (b *BadgerBackend) Delete(documentID string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(historyKey(documentID))
	})
}

func historyKey(documentID string) []byte {
	return []byte(historyKeyPrefix + documentID)
}
