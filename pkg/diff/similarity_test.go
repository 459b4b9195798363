// ABOUTME: Tests for the similarity ratio
// ABOUTME: Verifies bounds, symmetry of edge cases, and rounding

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityBounds(t *testing.T) {
	cases := []struct {
		name  string
		textA string
		textB string
		want  float64
	}{
		{"identical", "abcdef", "abcdef", 1.0},
		{"both empty", "", "", 1.0},
		{"a empty", "", "nonempty", 0.0},
		{"b empty", "nonempty", "", 0.0},
		{"disjoint", "AAAA", "bbbb", 0.0},
		{"kitten sitting", "kitten", "sitting", 0.6154},
		{"half overlap", "ab", "ax", 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Similarity(tc.textA, tc.textB)
			assert.InDelta(t, tc.want, got, 0.00005)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSimilarityRounding(t *testing.T) {
	// 2*1/(1+2) = 0.666666... rounds to four decimals
	got := Similarity("a", "ab")
	assert.Equal(t, 0.6667, got)
}

func TestSimilarityCountsRunes(t *testing.T) {
	// One of three runes matches on each side: 2*1/6
	got := Similarity("日本語", "中国語")
	assert.InDelta(t, 0.3333, got, 0.00005)
}
