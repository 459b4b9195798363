// Package revision stores per-document ordered histories of immutable
// text snapshots and compares stored snapshots through the diff engine
package revision

import "errors"

var (
	// ErrInvalidDocumentID indicates a missing or unsafe document identifier
	ErrInvalidDocumentID = errors.New("revision: invalid document id")

	// ErrInvalidVersionID indicates a missing version identifier
	ErrInvalidVersionID = errors.New("revision: invalid version id")

	// ErrPersistence wraps a storage fault. The in-memory history stays
	// consistent; the caller may retry or ignore.
	ErrPersistence = errors.New("revision: persistence failure")
)
