// Package generate implements the autoregressive melody generation loop.
//
// A Generator repeatedly queries a Predictor with a fixed-length
// context window of symbol IDs, picks the next ID by argmax, and
// slides the window forward. The loop is inherently sequential: the
// window mutated at step i is the sole input to step i+1.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/motif-ml/motif/internal/dataset"
	"github.com/motif-ml/motif/internal/vocab"
)

// Predictor maps a context window of IDs to a probability
// distribution over the vocabulary.
//
// The distribution is a vector of non-negative values of exactly
// vocabulary size; it need not be normalized. Implementations must be
// safe to call once per generation step.
type Predictor interface {
	Predict(window []int32) ([]float32, error)
}

// Config configures a generation run.
type Config struct {
	// Window is the context window length L.
	Window int

	// Length is the number of symbols to generate per run.
	Length int

	// Seed drives the random seed-window selection. >= 0 is
	// deterministic, -1 seeds from the global source.
	Seed int64
}

// DefaultConfig returns the standard generation settings: a context
// of 100 symbols, 500 generated symbols, random seed window.
func DefaultConfig() Config {
	return Config{
		Window: 100,
		Length: 500,
		Seed:   -1,
	}
}

// Result is the output of one generation run.
//
// On a prediction failure the partial Result produced so far is
// returned alongside the error as a diagnostic; it is not a valid
// generation.
type Result struct {
	// RunID uniquely identifies the run in logs and diagnostics.
	RunID string

	// Tokens are the generated symbols in emission order.
	Tokens []string

	// IDs are the vocabulary IDs behind Tokens.
	IDs []int32
}

// Generator walks a Predictor forward to produce a symbol sequence.
type Generator struct {
	predictor Predictor
	vocab     *vocab.Vocabulary
	config    Config
	rng       *rand.Rand
}

// New creates a generator for the given predictor and vocabulary.
func New(p Predictor, v *vocab.Vocabulary, config Config) *Generator {
	var rng *rand.Rand
	if config.Seed >= 0 {
		rng = rand.New(rand.NewSource(config.Seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // User requested random seed
	}

	return &Generator{
		predictor: p,
		vocab:     v,
		config:    config,
		rng:       rng,
	}
}

// Generate seeds a context window by picking one complete window from
// the corpus ID stream uniformly at random, then generates n symbols.
func (g *Generator) Generate(stream []int32, n int) (*Result, error) {
	if len(stream) < g.config.Window {
		return nil, fmt.Errorf("seed window: %w: stream length %d, window %d",
			dataset.ErrInsufficientData, len(stream), g.config.Window)
	}

	offset := g.rng.Intn(len(stream) - g.config.Window + 1)
	seed := make([]int32, g.config.Window)
	copy(seed, stream[offset:offset+g.config.Window])

	return g.GenerateFrom(seed, n)
}

// GenerateFrom generates exactly n symbols starting from an explicit
// seed window of length Config.Window.
//
// Each step queries the Predictor with the current window, picks the
// arg-max ID (ties broken by lowest ID), and slides the window by one.
// A failing or mis-sized prediction aborts the run with ErrPrediction;
// the symbols emitted before the failure are returned as a diagnostic.
func (g *Generator) GenerateFrom(seed []int32, n int) (*Result, error) {
	if len(seed) != g.config.Window {
		return nil, fmt.Errorf("%w: seed length %d, window %d", ErrWindowSize, len(seed), g.config.Window)
	}

	window := make([]int32, len(seed))
	copy(window, seed)

	result := &Result{
		RunID:  uuid.NewString(),
		Tokens: make([]string, 0, n),
		IDs:    make([]int32, 0, n),
	}

	for i := 0; i < n; i++ {
		dist, err := g.predictor.Predict(window)
		if err != nil {
			return result, fmt.Errorf("step %d: %w: %v", i, ErrPrediction, err)
		}
		if len(dist) != g.vocab.Size() {
			return result, fmt.Errorf("step %d: %w: distribution length %d, vocabulary size %d",
				i, ErrPrediction, len(dist), g.vocab.Size())
		}

		next := argmax(dist)
		token, err := g.vocab.TokenFor(next)
		if err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}

		result.Tokens = append(result.Tokens, token)
		result.IDs = append(result.IDs, next)

		// Slide: drop the oldest ID, append the chosen one. Length
		// stays exactly Config.Window.
		window = append(window[1:], next)
	}

	return result, nil
}

// argmax returns the index of the maximum value. The strict
// comparison breaks ties toward the lowest index.
func argmax(dist []float32) int32 {
	maxIdx := 0
	maxVal := dist[0]
	for i, v := range dist[1:] {
		if v > maxVal {
			maxVal = v
			maxIdx = i + 1
		}
	}
	return int32(maxIdx) //nolint:gosec // vocabulary size is bounded
}
