// ABOUTME: Tests for change summary aggregation
// ABOUTME: Verifies per-kind counting and the total-change derivation

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeCountsByKind(t *testing.T) {
	segments := []Segment{
		{Kind: Equal, Original: "stable", Modified: "stable"},
		{Kind: Insert, Modified: "abc"},
		{Kind: Delete, Original: "xy"},
		{Kind: Replace, Original: "old", Modified: "newer"},
	}

	s := Summarize(segments)

	assert.Equal(t, 3+5, s.Insertions)
	assert.Equal(t, 2+3, s.Deletions)
	assert.Equal(t, 1, s.Replacements)
	assert.Equal(t, 6, s.UnchangedChars)
	assert.Equal(t, s.Insertions+s.Deletions, s.TotalChanges)
}

func TestSummarizeCountsRunesNotBytes(t *testing.T) {
	s := Summarize([]Segment{
		{Kind: Insert, Modified: "日本語"},
		{Kind: Delete, Original: "héllo"},
		{Kind: Equal, Original: "漢字"},
	})

	assert.Equal(t, 3, s.Insertions)
	assert.Equal(t, 5, s.Deletions)
	assert.Equal(t, 2, s.UnchangedChars)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Insertions)
	assert.Zero(t, s.Deletions)
	assert.Zero(t, s.Replacements)
	assert.Zero(t, s.UnchangedChars)
	assert.Zero(t, s.TotalChanges)
}
