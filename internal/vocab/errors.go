package vocab

import "errors"

// Sentinel errors for vocabulary construction and lookup.
var (
	ErrEmptyCorpus  = errors.New("empty corpus: no tokens to build a vocabulary from")
	ErrUnknownToken = errors.New("unknown token")
	ErrIDOutOfRange = errors.New("id out of range")
	ErrCorruptVocab = errors.New("corrupt vocabulary")
)
