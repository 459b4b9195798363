// ABOUTME: Change summary aggregation over diff segments
// ABOUTME: Counts inserted, deleted, replaced, and unchanged units

package diff

import "unicode/utf8"

// Summarize counts changed and unchanged content across segments.
// Lengths are rune counts. A replace contributes to both insertions
// and deletions and bumps the replacement run count by one.
func Summarize(segments []Segment) Summary {
	var s Summary
	for _, seg := range segments {
		switch seg.Kind {
		case Insert:
			s.Insertions += utf8.RuneCountInString(seg.Modified)
		case Delete:
			s.Deletions += utf8.RuneCountInString(seg.Original)
		case Replace:
			s.Replacements++
			s.Deletions += utf8.RuneCountInString(seg.Original)
			s.Insertions += utf8.RuneCountInString(seg.Modified)
		case Equal:
			s.UnchangedChars += utf8.RuneCountInString(seg.Original)
		}
	}
	s.TotalChanges = s.Insertions + s.Deletions
	return s
}
