package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCountAndTargets(t *testing.T) {
	ids := []int32{0, 1, 2, 3, 4, 5}
	window := 2

	pairs, err := Extract(ids, window)
	require.NoError(t, err)
	require.Len(t, pairs, len(ids)-window)

	for i, p := range pairs {
		assert.Equal(t, ids[i:i+window], p.Context, "pair %d context", i)
		assert.Equal(t, ids[i+window], p.Target, "pair %d target", i)
	}
}

func TestExtractContextsAreCopies(t *testing.T) {
	ids := []int32{0, 1, 2, 3}
	pairs, err := Extract(ids, 2)
	require.NoError(t, err)

	ids[1] = 99
	assert.Equal(t, []int32{0, 1}, pairs[0].Context, "context must not alias the stream")
}

func TestExtractInsufficientData(t *testing.T) {
	// Stream shorter than the window.
	_, err := Extract([]int32{0, 1}, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	// Stream exactly the window length leaves no target.
	_, err = Extract([]int32{0, 1, 2}, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Extract(nil, 1)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestExtractInvalidWindow(t *testing.T) {
	_, err := Extract([]int32{0, 1, 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestNormalize(t *testing.T) {
	scaled := Normalize([]int32{0, 1, 3}, 4)
	assert.Equal(t, []float32{0, 0.25, 0.75}, scaled)
	for _, v := range scaled {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}
