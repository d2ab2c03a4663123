// Package vocab provides the token vocabulary for Motif.
//
// This package wraps the internal vocab implementation and provides
// a clean public API for building, querying, and persisting the
// token-to-ID bijection.
//
// Example usage:
//
//	import "github.com/motif-ml/motif/vocab"
//
//	v, err := vocab.Build(tokens)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := v.EncodeAll(tokens)
//	if err != nil {
//	    log.Fatal(err)
//	}
package vocab

import (
	"github.com/motif-ml/motif/internal/vocab"
)

// Vocabulary maps tokens to dense IDs in [0, Size()) and back.
type Vocabulary = vocab.Vocabulary

// Sentinel errors for vocabulary construction and lookup.
var (
	ErrEmptyCorpus  = vocab.ErrEmptyCorpus
	ErrUnknownToken = vocab.ErrUnknownToken
	ErrIDOutOfRange = vocab.ErrIDOutOfRange
	ErrCorruptVocab = vocab.ErrCorruptVocab
)

// Build constructs a vocabulary from a token stream. IDs are assigned
// by lexicographic order of the distinct tokens, so the result is
// deterministic for any input order.
func Build(tokens []string) (*Vocabulary, error) {
	return vocab.Build(tokens)
}

// FromTokens reconstructs a vocabulary from an ordered token list,
// where position is the ID assignment.
func FromTokens(tokens []string) (*Vocabulary, error) {
	return vocab.FromTokens(tokens)
}

// Load reads a vocabulary previously written by Vocabulary.Save.
func Load(path string) (*Vocabulary, error) {
	return vocab.Load(path)
}
