// Package timeline places generated tokens on a time axis.
package timeline

import (
	"errors"
	"fmt"
)

// ErrNegativeStep reports a negative offset step, which would break
// the strictly increasing offsets downstream renderers rely on.
var ErrNegativeStep = errors.New("step must be non-negative")

// Event is one renderable symbol: a token and the offset, in beats or
// quarter-note units, at which it starts.
type Event struct {
	Token  string
	Offset float64
}

// Assemble assigns start offsets to a token sequence. Token i starts
// at i*step, so offsets increase by a fixed step with no overlaps and
// no gaps.
func Assemble(tokens []string, step float64) ([]Event, error) {
	if step < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeStep, step)
	}

	events := make([]Event, len(tokens))
	for i, tok := range tokens {
		events[i] = Event{Token: tok, Offset: float64(i) * step}
	}
	return events, nil
}
