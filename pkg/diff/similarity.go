// ABOUTME: Similarity scoring over the character alignment
// ABOUTME: Ratio is 2*M/T, rounded to four decimal digits

package diff

import "math"

// Similarity returns the normalized ratio in [0,1] of content shared
// between two texts: 2*M/T where M is the matched rune count from the
// character alignment and T the combined rune length. Both inputs
// empty yields 1.0, exactly one empty yields 0.0.
func Similarity(textA, textB string) float64 {
	return similarity([]rune(textA), []rune(textB))
}

func similarity(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	matched := newMatcher(a, b).matchedUnits()
	ratio := 2.0 * float64(matched) / float64(len(a)+len(b))

	// Fixed precision for stable display and comparison
	return math.Round(ratio*10000) / 10000
}
