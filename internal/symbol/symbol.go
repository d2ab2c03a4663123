// Package symbol implements the codec between musical events and
// their canonical string tokens.
//
// An event is either a single pitched note or a chord. Notes encode as
// their pitch name ("C4", "F#3"). Chords encode as ascending pitch
// classes joined by "." ("0.4.7"), discarding octave information.
package symbol

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ChordDelimiter separates pitch classes inside a chord token.
const ChordDelimiter = "."

// pitchClassCount is the number of distinct pitch classes.
const pitchClassCount = 12

// EventKind discriminates the two event variants.
type EventKind int

const (
	// KindNote is a single pitched note, identified by its pitch name.
	KindNote EventKind = iota

	// KindChord is a group of simultaneous pitches, identified by
	// their pitch classes.
	KindChord
)

// Event is one musical symbol: a note or a chord.
//
// Exactly one payload field is meaningful, selected by Kind: Name for
// notes, PitchClasses for chords.
type Event struct {
	Kind         EventKind
	Name         string
	PitchClasses []int
}

// Note creates a single-pitch event from a pitch name.
func Note(name string) Event {
	return Event{Kind: KindNote, Name: name}
}

// Chord creates a chord event. Pitch classes are normalized to
// ascending order with duplicates removed, so equal chords always
// produce equal events.
func Chord(classes ...int) Event {
	return Event{Kind: KindChord, PitchClasses: normalize(classes)}
}

// Encode converts an event to its canonical token.
//
// The same chord always yields the same token regardless of the order
// its pitch classes were supplied in.
func Encode(e Event) (string, error) {
	switch e.Kind {
	case KindNote:
		if e.Name == "" {
			return "", fmt.Errorf("%w: empty pitch name", ErrInvalidToken)
		}
		if strings.Contains(e.Name, ChordDelimiter) {
			return "", fmt.Errorf("%w: pitch name %q contains %q", ErrInvalidToken, e.Name, ChordDelimiter)
		}
		return e.Name, nil

	case KindChord:
		classes := normalize(e.PitchClasses)
		if len(classes) == 0 {
			return "", fmt.Errorf("%w: chord with no pitch classes", ErrInvalidToken)
		}
		parts := make([]string, len(classes))
		for i, pc := range classes {
			if pc < 0 || pc >= pitchClassCount {
				return "", fmt.Errorf("%w: pitch class %d out of range", ErrInvalidToken, pc)
			}
			parts[i] = strconv.Itoa(pc)
		}
		return strings.Join(parts, ChordDelimiter), nil

	default:
		return "", fmt.Errorf("%w: unknown event kind %d", ErrInvalidToken, e.Kind)
	}
}

// Decode reconstructs an event from its token.
//
// Tokens containing the chord delimiter, or consisting of a bare
// number, decode as chords; anything else decodes as a note. Malformed
// tokens fail with ErrInvalidToken, never a default event.
func Decode(token string) (Event, error) {
	if token == "" {
		return Event{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	if !strings.Contains(token, ChordDelimiter) && !isDigits(token) {
		return Note(token), nil
	}

	parts := strings.Split(token, ChordDelimiter)
	classes := make([]int, len(parts))
	for i, part := range parts {
		pc, err := strconv.Atoi(part)
		if err != nil {
			return Event{}, fmt.Errorf("%w: chord component %q in %q", ErrInvalidToken, part, token)
		}
		if pc < 0 || pc >= pitchClassCount {
			return Event{}, fmt.Errorf("%w: pitch class %d out of range in %q", ErrInvalidToken, pc, token)
		}
		classes[i] = pc
	}
	return Event{Kind: KindChord, PitchClasses: classes}, nil
}

// EncodeAll encodes a sequence of events into a token stream,
// preserving order. The first malformed event aborts the encoding.
func EncodeAll(events []Event) ([]string, error) {
	tokens := make([]string, len(events))
	for i, e := range events {
		tok, err := Encode(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func normalize(classes []int) []int {
	if len(classes) == 0 {
		return nil
	}
	sorted := append([]int{}, classes...)
	sort.Ints(sorted)
	out := sorted[:1]
	for _, pc := range sorted[1:] {
		if pc != out[len(out)-1] {
			out = append(out, pc)
		}
	}
	return out
}
