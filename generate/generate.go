// Package generate provides autoregressive melody generation for Motif.
//
// This package wraps the internal generate implementation and provides
// a clean public API for generation runs.
//
// Example usage:
//
//	import "github.com/motif-ml/motif/generate"
//
//	cfg := generate.DefaultConfig()
//	cfg.Window = 100
//	cfg.Seed = 42
//
//	gen := generate.New(predictor, vocabulary, cfg)
//	result, err := gen.Generate(idStream, cfg.Length)
//	if err != nil {
//	    log.Fatal(err)
//	}
package generate

import (
	"github.com/motif-ml/motif/internal/generate"
	"github.com/motif-ml/motif/internal/vocab"
)

// Predictor maps a context window of IDs to a probability
// distribution over the vocabulary.
type Predictor = generate.Predictor

// Config configures a generation run.
type Config = generate.Config

// Result is the output of one generation run.
type Result = generate.Result

// Generator walks a Predictor forward to produce a symbol sequence.
type Generator = generate.Generator

// ErrPrediction reports a failing or mis-sized prediction; the run is
// aborted and any partial output is surfaced as a diagnostic.
var ErrPrediction = generate.ErrPrediction

// ErrWindowSize reports a seed window whose length does not match the
// configured context window.
var ErrWindowSize = generate.ErrWindowSize

// DefaultConfig returns the standard generation settings.
//
// Defaults:
//   - Window: 100
//   - Length: 500
//   - Seed: -1 (random seed window)
func DefaultConfig() Config {
	return generate.DefaultConfig()
}

// New creates a generator for the given predictor and vocabulary.
//
// Example:
//
//	cfg := generate.Config{Window: 100, Length: 500, Seed: 42}
//	gen := generate.New(predictor, vocabulary, cfg)
func New(p Predictor, v *vocab.Vocabulary, config Config) *Generator {
	return generate.New(p, v, config)
}
