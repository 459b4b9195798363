// ABOUTME: Diff data model for text alignment
// ABOUTME: Defines segment kinds, granularities, and comparison results

package diff

// Kind classifies one run of an alignment
type Kind string

const (
	Equal   Kind = "equal"
	Insert  Kind = "insert"
	Delete  Kind = "delete"
	Replace Kind = "replace"
)

// Granularity selects the atomic unit of comparison
type Granularity int

const (
	Char Granularity = iota // individual characters (runes)
	Line                    // whole lines, terminators retained
)

// String returns the granularity name used in logs and metrics
func (g Granularity) String() string {
	if g == Line {
		return "line"
	}
	return "char"
}

// Segment is one classified contiguous run relating text A to text B.
// Segments are totally ordered and contiguous over A: concatenating the
// Original fields reproduces A, concatenating Modified reproduces B.
type Segment struct {
	Kind     Kind   `json:"type"`
	Original string `json:"original"`  // substring of A (empty for insert)
	Modified string `json:"modified"`  // substring of B (empty for delete)
	StartPos int    `json:"start_pos"` // rune offset into A
	EndPos   int    `json:"end_pos"`   // rune offset into A (== StartPos for insert)
}

// Summary counts the changes described by a segment list
type Summary struct {
	Insertions     int `json:"insertions"`
	Deletions      int `json:"deletions"`
	Replacements   int `json:"replacements"`
	UnchangedChars int `json:"unchanged_chars"`
	TotalChanges   int `json:"total_changes"`
}

// Result is the output of one comparison. Ephemeral, never persisted.
type Result struct {
	VersionA   string    `json:"version_a_preview"` // first 50 runes of A
	VersionB   string    `json:"version_b_preview"` // first 50 runes of B
	Segments   []Segment `json:"segments"`
	Similarity float64   `json:"similarity"`
	HTMLDiff   string    `json:"html_diff"`
	Summary    Summary   `json:"summary"`
}
