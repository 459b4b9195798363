// ABOUTME: Tests for the sequence matcher internals
// ABOUTME: Verifies block finding, tie-breaking, and opcode coverage

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) []rune { return []rune(s) }

func TestLongestMatchBasic(t *testing.T) {
	m := newMatcher(runes("abcd"), runes("bcde"))

	block := m.longestMatch(0, 4, 0, 4)
	assert.Equal(t, 1, block.a)
	assert.Equal(t, 0, block.b)
	assert.Equal(t, 3, block.size)
}

func TestLongestMatchNoOverlap(t *testing.T) {
	m := newMatcher(runes("abc"), runes("xyz"))

	block := m.longestMatch(0, 3, 0, 3)
	assert.Equal(t, 0, block.size)
}

func TestLongestMatchPrefersEarliest(t *testing.T) {
	// "ab" occurs twice on each side; the earliest start in a wins,
	// then the earliest start in b
	m := newMatcher(runes("ab_ab"), runes("ab~ab"))

	block := m.longestMatch(0, 5, 0, 5)
	assert.Equal(t, 0, block.a)
	assert.Equal(t, 0, block.b)
	assert.Equal(t, 2, block.size)
}

func TestMatchingBlocksSentinel(t *testing.T) {
	m := newMatcher(runes("abc"), runes("abc"))

	blocks := m.matchingBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, matchBlock{a: 0, b: 0, size: 3}, blocks[0])
	assert.Equal(t, matchBlock{a: 3, b: 3, size: 0}, blocks[1])
}

func TestMatchingBlocksEmpty(t *testing.T) {
	m := newMatcher(runes(""), runes(""))

	blocks := m.matchingBlocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, matchBlock{a: 0, b: 0, size: 0}, blocks[0])
}

func TestMatchingBlocksKittenSitting(t *testing.T) {
	m := newMatcher(runes("kitten"), runes("sitting"))

	blocks := m.matchingBlocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, matchBlock{a: 1, b: 1, size: 3}, blocks[0]) // "itt"
	assert.Equal(t, matchBlock{a: 5, b: 5, size: 1}, blocks[1]) // "n"
	assert.Equal(t, matchBlock{a: 6, b: 7, size: 0}, blocks[2])
}

func TestMatchingBlocksAdjacentCoalesced(t *testing.T) {
	m := newMatcher(runes("abcd"), runes("abcd"))

	blocks := m.matchingBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, 4, blocks[0].size)
}

func TestOpcodesCoverBothSequences(t *testing.T) {
	cases := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"abc", ""},
		{"same", "same"},
		{"abcdef", "axcyez"},
	}

	for _, tc := range cases {
		m := newMatcher(runes(tc[0]), runes(tc[1]))

		i, j := 0, 0
		for _, op := range m.opcodes() {
			require.Equal(t, i, op.a1, "%q/%q: gap in a coverage", tc[0], tc[1])
			require.Equal(t, j, op.b1, "%q/%q: gap in b coverage", tc[0], tc[1])
			require.LessOrEqual(t, op.a1, op.a2)
			require.LessOrEqual(t, op.b1, op.b2)
			i, j = op.a2, op.b2
		}
		assert.Equal(t, len(runes(tc[0])), i)
		assert.Equal(t, len(runes(tc[1])), j)
	}
}

func TestOpcodesKittenSitting(t *testing.T) {
	m := newMatcher(runes("kitten"), runes("sitting"))

	ops := m.opcodes()
	require.Len(t, ops, 5)
	assert.Equal(t, Replace, ops[0].tag)
	assert.Equal(t, Equal, ops[1].tag)
	assert.Equal(t, Replace, ops[2].tag)
	assert.Equal(t, Equal, ops[3].tag)
	assert.Equal(t, Insert, ops[4].tag)
}

func TestMatchedUnits(t *testing.T) {
	m := newMatcher(runes("kitten"), runes("sitting"))
	assert.Equal(t, 4, m.matchedUnits())

	m = newMatcher(runes("abc"), runes("abc"))
	assert.Equal(t, 3, m.matchedUnits())

	m = newMatcher(runes("abc"), runes("xyz"))
	assert.Equal(t, 0, m.matchedUnits())
}

func TestMatcherWorksOnLines(t *testing.T) {
	a := []string{"one\n", "two\n", "three\n"}
	b := []string{"one\n", "2\n", "three\n"}

	m := newMatcher(a, b)
	ops := m.opcodes()
	require.Len(t, ops, 3)
	assert.Equal(t, Equal, ops[0].tag)
	assert.Equal(t, Replace, ops[1].tag)
	assert.Equal(t, Equal, ops[2].tag)
}
