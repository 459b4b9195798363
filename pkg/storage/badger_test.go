// ABOUTME: Tests for the BadgerDB history backend
// ABOUTME: Runs against the in-memory mode, no disk state

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBadger(t *testing.T) *BadgerBackend {
	t.Helper()
	backend, err := NewBadgerBackend(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestBadgerBackendRoundTrip(t *testing.T) {
	backend := setupBadger(t)

	want := sampleHistory()
	require.NoError(t, backend.Store("doc1", want))

	got, err := backend.Load("doc1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBadgerBackendLoadMissing(t *testing.T) {
	backend := setupBadger(t)

	got, err := backend.Load("never-stored")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBadgerBackendDocumentsIsolated(t *testing.T) {
	backend := setupBadger(t)

	require.NoError(t, backend.Store("doc1", sampleHistory()))
	require.NoError(t, backend.Store("doc2", sampleHistory()[:1]))

	got1, err := backend.Load("doc1")
	require.NoError(t, err)
	assert.Len(t, got1, 2)

	got2, err := backend.Load("doc2")
	require.NoError(t, err)
	assert.Len(t, got2, 1)
}

func TestBadgerBackendDelete(t *testing.T) {
	backend := setupBadger(t)

	require.NoError(t, backend.Store("doc1", sampleHistory()))
	require.NoError(t, backend.Delete("doc1"))

	got, err := backend.Load("doc1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, backend.Delete("doc1"))
}

func TestBadgerBackendRequiresPath(t *testing.T) {
	_, err := NewBadgerBackend(BadgerConfig{})
	assert.Error(t, err)
}
