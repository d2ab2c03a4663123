// Package dataset turns an ID stream into fixed-length training pairs.
package dataset

import "fmt"

// Pair is one supervised training example: a context window and the ID
// that immediately follows it in the source stream.
type Pair struct {
	Context []int32
	Target  int32
}

// Extract slices an ID stream into sliding-window training pairs.
//
// For a stream of length M and window length L it produces exactly
// M-L pairs in stream order; pair i is (ids[i:i+L], ids[i+L]). Each
// context is an independent copy, never an alias into the stream.
// A stream with no complete (window, target) pair fails with
// ErrInsufficientData rather than returning an empty result.
func Extract(ids []int32, window int) ([]Pair, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if len(ids) <= window {
		return nil, fmt.Errorf("%w: stream length %d, window %d", ErrInsufficientData, len(ids), window)
	}

	pairs := make([]Pair, 0, len(ids)-window)
	for i := 0; i+window < len(ids); i++ {
		context := make([]int32, window)
		copy(context, ids[i:i+window])
		pairs = append(pairs, Pair{Context: context, Target: ids[i+window]})
	}
	return pairs, nil
}

// Normalize scales IDs into [0, 1) by dividing by the vocabulary
// size. Predictors that want scaled inputs apply this at their
// boundary; the pairs themselves always carry raw IDs.
func Normalize(ids []int32, vocabSize int) []float32 {
	out := make([]float32, len(ids))
	for i, id := range ids {
		out[i] = float32(id) / float32(vocabSize)
	}
	return out
}
