// Package symbol provides the musical event codec for Motif.
//
// This package wraps the internal symbol implementation and provides
// a clean public API for converting events to canonical tokens and
// back.
//
// Example usage:
//
//	import "github.com/motif-ml/motif/symbol"
//
//	tok, err := symbol.Encode(symbol.Chord(7, 0, 4)) // "0.4.7"
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	event, err := symbol.Decode(tok)
//	if err != nil {
//	    log.Fatal(err)
//	}
package symbol

import (
	"github.com/motif-ml/motif/internal/symbol"
)

// Event is one musical symbol: a note or a chord.
type Event = symbol.Event

// EventKind discriminates the two event variants.
type EventKind = symbol.EventKind

// Event kinds.
const (
	KindNote  = symbol.KindNote
	KindChord = symbol.KindChord
)

// ChordDelimiter separates pitch classes inside a chord token.
const ChordDelimiter = symbol.ChordDelimiter

// ErrInvalidToken reports a token or event that cannot be converted.
var ErrInvalidToken = symbol.ErrInvalidToken

// Note creates a single-pitch event from a pitch name.
func Note(name string) Event {
	return symbol.Note(name)
}

// Chord creates a chord event from pitch classes, normalized to
// ascending order with duplicates removed.
func Chord(classes ...int) Event {
	return symbol.Chord(classes...)
}

// Encode converts an event to its canonical token.
func Encode(e Event) (string, error) {
	return symbol.Encode(e)
}

// Decode reconstructs an event from its token.
func Decode(token string) (Event, error) {
	return symbol.Decode(token)
}

// EncodeAll encodes a sequence of events into a token stream.
func EncodeAll(events []Event) ([]string, error) {
	return symbol.EncodeAll(events)
}
