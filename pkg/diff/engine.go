// ABOUTME: Diff engine entry points at char and line granularity
// ABOUTME: Bounds input size and derives the full comparison result

package diff

import "strings"

// DefaultMaxInput is the default comparison cap in runes per side.
// Alignment cost is superlinear in the worst case, so unbounded input
// is rejected rather than allowed to consume arbitrary CPU and memory.
const DefaultMaxInput = 200000

const previewRunes = 50

// Engine computes diffs between two texts. Engines are stateless and
// safe for concurrent use.
type Engine struct {
	maxInput int
}

// NewEngine creates an engine with the given input cap in runes per
// side. A cap of zero or below selects DefaultMaxInput.
func NewEngine(maxInput int) *Engine {
	if maxInput <= 0 {
		maxInput = DefaultMaxInput
	}
	return &Engine{maxInput: maxInput}
}

// MaxInput returns the configured comparison cap in runes per side
func (e *Engine) MaxInput() int {
	return e.maxInput
}

// Compare aligns two texts at the given granularity and derives the
// similarity ratio, HTML markup, and change summary. Similarity is
// always computed over characters, regardless of segment granularity.
func (e *Engine) Compare(textA, textB string, granularity Granularity) (*Result, error) {
	runesA := []rune(textA)
	runesB := []rune(textB)
	if len(runesA) > e.maxInput || len(runesB) > e.maxInput {
		return nil, ErrInputTooLarge
	}

	var segments []Segment
	if granularity == Line {
		segments = lineSegments(textA, textB)
	} else {
		segments = charSegments(runesA, runesB)
	}

	return &Result{
		VersionA:   preview(runesA),
		VersionB:   preview(runesB),
		Segments:   segments,
		Similarity: similarity(runesA, runesB),
		HTMLDiff:   RenderHTML(segments),
		Summary:    Summarize(segments),
	}, nil
}

// Segments returns only the ordered alignment, without derived output
func (e *Engine) Segments(textA, textB string, granularity Granularity) ([]Segment, error) {
	runesA := []rune(textA)
	runesB := []rune(textB)
	if len(runesA) > e.maxInput || len(runesB) > e.maxInput {
		return nil, ErrInputTooLarge
	}
	if granularity == Line {
		return lineSegments(textA, textB), nil
	}
	return charSegments(runesA, runesB), nil
}

func charSegments(a, b []rune) []Segment {
	m := newMatcher(a, b)

	var segments []Segment
	for _, op := range m.opcodes() {
		segments = append(segments, Segment{
			Kind:     op.tag,
			Original: string(a[op.a1:op.a2]),
			Modified: string(b[op.b1:op.b2]),
			StartPos: op.a1,
			EndPos:   op.a2,
		})
	}
	return segments
}

func lineSegments(textA, textB string) []Segment {
	linesA := splitLines(textA)
	linesB := splitLines(textB)

	// Rune offset into A of each line start, plus the end of A
	offsets := make([]int, len(linesA)+1)
	for i, line := range linesA {
		offsets[i+1] = offsets[i] + len([]rune(line))
	}

	m := newMatcher(linesA, linesB)

	var segments []Segment
	for _, op := range m.opcodes() {
		segments = append(segments, Segment{
			Kind:     op.tag,
			Original: strings.Join(linesA[op.a1:op.a2], ""),
			Modified: strings.Join(linesB[op.b1:op.b2], ""),
			StartPos: offsets[op.a1],
			EndPos:   offsets[op.a2],
		})
	}
	return segments
}

// splitLines splits text into lines retaining terminators, so joining
// the lines reproduces the input exactly. "\r\n" is one terminator.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func preview(r []rune) string {
	if len(r) > previewRunes {
		return string(r[:previewRunes]) + "..."
	}
	return string(r)
}
