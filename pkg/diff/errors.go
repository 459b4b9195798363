// Package diff aligns two text snapshots into typed segments and derives
// renderable markup, change summaries, and a similarity ratio
package diff

import "errors"

var (
	// ErrInputTooLarge indicates a comparison input above the configured cap
	ErrInputTooLarge = errors.New("diff: input exceeds maximum comparison length")
)
