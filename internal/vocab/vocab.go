// Package vocab builds and persists the token vocabulary.
//
// A vocabulary is a bijection between tokens and dense integer IDs.
// IDs are assigned by sorting the distinct tokens of a corpus
// lexicographically, so the assignment is a pure function of the
// corpus's token set: rebuilding from the same corpus reproduces
// identical IDs.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Vocabulary maps tokens to dense IDs in [0, Size()) and back.
//
// A Vocabulary is immutable after construction and must be persisted
// alongside any trained predictor, since IDs are meaningless without
// the token order that produced them.
type Vocabulary struct {
	tokens []string         // ID -> token
	ids    map[string]int32 // token -> ID
}

// Build constructs a vocabulary from a token stream.
//
// Duplicates and input order do not affect the result. An empty
// stream fails with ErrEmptyCorpus.
func Build(tokens []string) (*Vocabulary, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCorpus
	}

	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}

	sorted := make([]string, 0, len(set))
	for tok := range set {
		sorted = append(sorted, tok)
	}
	sort.Strings(sorted)

	return fromOrdered(sorted)
}

// FromTokens reconstructs a vocabulary from an ordered token list,
// where position is the ID assignment. Used when loading a persisted
// vocabulary; the list must be duplicate-free.
func FromTokens(tokens []string) (*Vocabulary, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCorpus
	}
	return fromOrdered(append([]string{}, tokens...))
}

func fromOrdered(tokens []string) (*Vocabulary, error) {
	ids := make(map[string]int32, len(tokens))
	for i, tok := range tokens {
		if _, seen := ids[tok]; seen {
			return nil, fmt.Errorf("%w: duplicate token %q", ErrCorruptVocab, tok)
		}
		ids[tok] = int32(i)
	}
	return &Vocabulary{tokens: tokens, ids: ids}, nil
}

// Size returns the number of distinct tokens.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// IDFor returns the ID assigned to a token.
func (v *Vocabulary) IDFor(token string) (int32, error) {
	id, ok := v.ids[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return id, nil
}

// TokenFor returns the token assigned to an ID.
func (v *Vocabulary) TokenFor(id int32) (string, error) {
	if id < 0 || int(id) >= len(v.tokens) {
		return "", fmt.Errorf("%w: %d (vocabulary size %d)", ErrIDOutOfRange, id, len(v.tokens))
	}
	return v.tokens[id], nil
}

// Tokens returns the tokens in ID order.
func (v *Vocabulary) Tokens() []string {
	return append([]string{}, v.tokens...)
}

// EncodeAll maps a token stream to its ID stream.
func (v *Vocabulary) EncodeAll(tokens []string) ([]int32, error) {
	ids := make([]int32, len(tokens))
	for i, tok := range tokens {
		id, err := v.IDFor(tok)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// DecodeAll maps an ID stream back to tokens.
func (v *Vocabulary) DecodeAll(ids []int32) ([]string, error) {
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tok, err := v.TokenFor(id)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Save writes the vocabulary to path as a JSON token list. The list
// order is the ID assignment, so the file round-trips exactly.
func (v *Vocabulary) Save(path string) error {
	data, err := json.MarshalIndent(v.tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write vocabulary: %w", err)
	}
	return nil
}

// Load reads a vocabulary previously written by Save.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVocab, err)
	}
	return FromTokens(tokens)
}
