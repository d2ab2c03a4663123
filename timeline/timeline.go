// Package timeline provides timeline assembly for Motif.
//
// This package wraps the internal timeline implementation and
// provides a clean public API for placing generated tokens at
// monotonically increasing start offsets. The resulting events are
// the hand-off point to a renderer.
package timeline

import (
	"github.com/motif-ml/motif/internal/timeline"
)

// Event is one renderable symbol: a token and its start offset.
type Event = timeline.Event

// ErrNegativeStep reports a negative offset step.
var ErrNegativeStep = timeline.ErrNegativeStep

// Assemble assigns start offsets to a token sequence; token i starts
// at i*step.
func Assemble(tokens []string, step float64) ([]Event, error) {
	return timeline.Assemble(tokens, step)
}
