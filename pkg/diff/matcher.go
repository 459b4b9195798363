// ABOUTME: Longest-matching-block sequence matcher
// ABOUTME: Ratcliff/Obershelp alignment with earliest-match tie-break

package diff

import "sort"

// matchBlock is a run of identical units: a[a:a+size] == b[b:b+size]
type matchBlock struct {
	a, b, size int
}

// opcode describes how a[a1:a2] relates to b[b1:b2]
type opcode struct {
	tag            Kind
	a1, a2, b1, b2 int
}

// matcher aligns two sequences of comparable units. Pure and reentrant;
// a fresh matcher is built per comparison.
type matcher[T comparable] struct {
	a, b []T
	b2j  map[T][]int // unit -> ascending positions in b
}

func newMatcher[T comparable](a, b []T) *matcher[T] {
	m := &matcher[T]{a: a, b: b, b2j: make(map[T][]int, len(b))}
	for j, unit := range b {
		m.b2j[unit] = append(m.b2j[unit], j)
	}
	return m
}

// longestMatch finds the longest contiguous matching block with
// a-range [alo,ahi) and b-range [blo,bhi). Among blocks of equal
// length the one starting earliest in a wins, then earliest in b.
func (m *matcher[T]) longestMatch(alo, ahi, blo, bhi int) matchBlock {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] = length of the longest match ending at a[i-1], b[j]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return matchBlock{a: besti, b: bestj, size: bestsize}
}

// matchingBlocks returns all maximal matching blocks in order, ending
// with a zero-length sentinel at (len(a), len(b))
func (m *matcher[T]) matchingBlocks() []matchBlock {
	type span struct {
		alo, ahi, blo, bhi int
	}

	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var matched []matchBlock

	// Recurse on the unmatched prefixes and suffixes around each block
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		block := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if block.size == 0 {
			continue
		}
		matched = append(matched, block)

		if s.alo < block.a && s.blo < block.b {
			queue = append(queue, span{s.alo, block.a, s.blo, block.b})
		}
		if block.a+block.size < s.ahi && block.b+block.size < s.bhi {
			queue = append(queue, span{block.a + block.size, s.ahi, block.b + block.size, s.bhi})
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].a != matched[j].a {
			return matched[i].a < matched[j].a
		}
		return matched[i].b < matched[j].b
	})

	// Coalesce adjacent blocks
	var blocks []matchBlock
	for _, block := range matched {
		n := len(blocks)
		if n > 0 && blocks[n-1].a+blocks[n-1].size == block.a && blocks[n-1].b+blocks[n-1].size == block.b {
			blocks[n-1].size += block.size
			continue
		}
		blocks = append(blocks, block)
	}

	return append(blocks, matchBlock{a: len(m.a), b: len(m.b)})
}

// opcodes converts matching blocks into an ordered stream covering both
// sequences completely
func (m *matcher[T]) opcodes() []opcode {
	var ops []opcode
	i, j := 0, 0

	for _, block := range m.matchingBlocks() {
		var tag Kind
		switch {
		case i < block.a && j < block.b:
			tag = Replace
		case i < block.a:
			tag = Delete
		case j < block.b:
			tag = Insert
		}
		if tag != "" {
			ops = append(ops, opcode{tag: tag, a1: i, a2: block.a, b1: j, b2: block.b})
		}

		i, j = block.a+block.size, block.b+block.size
		if block.size > 0 {
			ops = append(ops, opcode{tag: Equal, a1: block.a, a2: i, b1: block.b, b2: j})
		}
	}

	return ops
}

// matchedUnits is the total count of units covered by matching blocks
func (m *matcher[T]) matchedUnits() int {
	total := 0
	for _, block := range m.matchingBlocks() {
		total += block.size
	}
	return total
}
