// Package pipeline composes the corpus-to-dataset and
// generation-to-timeline flows from the individual stages.
package pipeline

import (
	"fmt"

	"github.com/motif-ml/motif/internal/dataset"
	"github.com/motif-ml/motif/internal/generate"
	"github.com/motif-ml/motif/internal/symbol"
	"github.com/motif-ml/motif/internal/timeline"
	"github.com/motif-ml/motif/internal/vocab"
)

// Prepared is the trainable form of a corpus: its token stream, the
// vocabulary derived from it, the ID stream, and the sliding-window
// training pairs.
type Prepared struct {
	Tokens []string
	Vocab  *vocab.Vocabulary
	IDs    []int32
	Pairs  []dataset.Pair
}

// Prepare runs a corpus of events through the full dataset path:
// encode to tokens, build the vocabulary, map to IDs, extract
// training pairs for the given window length.
func Prepare(events []symbol.Event, window int) (*Prepared, error) {
	tokens, err := symbol.EncodeAll(events)
	if err != nil {
		return nil, fmt.Errorf("encode corpus: %w", err)
	}

	return PrepareTokens(tokens, window)
}

// PrepareTokens is Prepare for a corpus that is already tokenized,
// e.g. a stream loaded from the store.
func PrepareTokens(tokens []string, window int) (*Prepared, error) {
	v, err := vocab.Build(tokens)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary: %w", err)
	}

	ids, err := v.EncodeAll(tokens)
	if err != nil {
		return nil, fmt.Errorf("encode ids: %w", err)
	}

	pairs, err := dataset.Extract(ids, window)
	if err != nil {
		return nil, fmt.Errorf("extract windows: %w", err)
	}

	return &Prepared{
		Tokens: tokens,
		Vocab:  v,
		IDs:    ids,
		Pairs:  pairs,
	}, nil
}

// Compose runs one generation pass and places the output on a
// timeline: seed a window from the ID stream, generate cfg.Length
// symbols with the predictor, assign each a start offset step apart.
func Compose(
	stream []int32,
	v *vocab.Vocabulary,
	p generate.Predictor,
	cfg generate.Config,
	step float64,
) ([]timeline.Event, *generate.Result, error) {
	gen := generate.New(p, v, cfg)

	res, err := gen.Generate(stream, cfg.Length)
	if err != nil {
		return nil, res, fmt.Errorf("generate: %w", err)
	}

	events, err := timeline.Assemble(res.Tokens, step)
	if err != nil {
		return nil, res, fmt.Errorf("assemble timeline: %w", err)
	}

	return events, res, nil
}
