// ABOUTME: Revision data model for document snapshots
// ABOUTME: Defines immutable TextVersion entries and the persistence boundary

package revision

// TextVersion is one immutable saved state of a document's full content.
// Created only by Store.Save, never mutated afterward, removed only by
// whole-document clearing.
type TextVersion struct {
	VersionID string  `json:"version_id"` // derived from (content, timestamp)
	Content   string  `json:"content"`    // full text, not a delta
	Timestamp string  `json:"timestamp"`  // RFC 3339, assigned at save time
	Label     *string `json:"label"`      // optional annotation, e.g. "draft"
	Style     *string `json:"style"`      // optional style annotation
}

// Backend persists ordered version histories keyed by document id.
// Load returns (nil, nil) for documents that were never stored; an
// error means the persisted state exists but could not be read.
// Store rewrites the full serialized history. Delete is idempotent.
type Backend interface {
	Load(documentID string) ([]TextVersion, error)
	Store(documentID string, versions []TextVersion) error
	Delete(documentID string) error
}
