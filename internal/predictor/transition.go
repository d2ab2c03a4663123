// Package predictor provides a transition-count predictor.
//
// It is the built-in stand-in for an external neural predictor: next
// symbol probabilities come from how often each ID followed the
// window's last ID in the training stream. Good enough to exercise
// the full generation path end to end.
package predictor

import (
	"fmt"

	"github.com/motif-ml/motif/internal/dataset"
)

// Transition predicts the next ID from first-order transition counts.
type Transition struct {
	vocabSize int
	counts    map[int32]map[int32]int // last ID -> next ID -> count
	freq      []float32               // global ID frequencies, fallback for unseen contexts
}

// Train builds a transition predictor from an ID stream. The stream
// needs at least one transition.
func Train(ids []int32, vocabSize int) (*Transition, error) {
	if vocabSize < 1 {
		return nil, fmt.Errorf("vocabulary size must be at least 1, got %d", vocabSize)
	}
	if len(ids) < 2 {
		return nil, fmt.Errorf("transition counts: %w: stream length %d", dataset.ErrInsufficientData, len(ids))
	}

	counts := make(map[int32]map[int32]int)
	freq := make([]float32, vocabSize)
	total := 0

	for i, id := range ids {
		if id < 0 || int(id) >= vocabSize {
			return nil, fmt.Errorf("position %d: id %d out of range for vocabulary size %d", i, id, vocabSize)
		}
		freq[id]++
		total++

		if i == 0 {
			continue
		}
		prev := ids[i-1]
		if counts[prev] == nil {
			counts[prev] = make(map[int32]int)
		}
		counts[prev][id]++
	}

	for i := range freq {
		freq[i] /= float32(total)
	}

	return &Transition{
		vocabSize: vocabSize,
		counts:    counts,
		freq:      freq,
	}, nil
}

// Predict returns a distribution over the vocabulary given a context
// window. Only the window's last ID is consulted; windows whose last
// ID never started a transition fall back to global frequencies.
func (t *Transition) Predict(window []int32) ([]float32, error) {
	if len(window) == 0 {
		return nil, fmt.Errorf("empty context window")
	}

	last := window[len(window)-1]
	next, ok := t.counts[last]
	if !ok {
		return append([]float32{}, t.freq...), nil
	}

	dist := make([]float32, t.vocabSize)
	total := 0
	for _, count := range next {
		total += count
	}
	for id, count := range next {
		dist[id] = float32(count) / float32(total)
	}
	return dist, nil
}

// VocabSize returns the distribution length Predict produces.
func (t *Transition) VocabSize() int {
	return t.vocabSize
}
