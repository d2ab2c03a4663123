// Package dataset provides sliding-window training pairs for Motif.
//
// This package wraps the internal dataset implementation and provides
// a clean public API for segmenting an ID stream into supervised
// (context, target) examples.
package dataset

import (
	"github.com/motif-ml/motif/internal/dataset"
)

// Pair is one supervised training example.
type Pair = dataset.Pair

// Sentinel errors for window extraction.
var (
	ErrInsufficientData = dataset.ErrInsufficientData
	ErrInvalidWindow    = dataset.ErrInvalidWindow
)

// Extract slices an ID stream into sliding-window training pairs.
// For a stream of length M and window length L it produces exactly
// M-L pairs in stream order.
func Extract(ids []int32, window int) ([]Pair, error) {
	return dataset.Extract(ids, window)
}

// Normalize scales IDs into [0, 1) by dividing by the vocabulary
// size, for predictors that want scaled inputs.
func Normalize(ids []int32, vocabSize int) []float32 {
	return dataset.Normalize(ids, vocabSize)
}
