package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motif-ml/motif/internal/dataset"
)

func TestTrainAndPredict(t *testing.T) {
	// 0 is always followed by 1, 1 always by 0.
	ids := []int32{0, 1, 0, 1, 0, 1}
	tr, err := Train(ids, 3)
	require.NoError(t, err)

	dist, err := tr.Predict([]int32{2, 0})
	require.NoError(t, err)
	require.Len(t, dist, 3)
	assert.Equal(t, float32(1), dist[1])
	assert.Equal(t, float32(0), dist[0])
	assert.Equal(t, float32(0), dist[2])
}

func TestPredictProportionalCounts(t *testing.T) {
	// After 0: twice 1, once 2.
	ids := []int32{0, 1, 0, 1, 0, 2}
	tr, err := Train(ids, 3)
	require.NoError(t, err)

	dist, err := tr.Predict([]int32{0})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, dist[1], 1e-6)
	assert.InDelta(t, 1.0/3.0, dist[2], 1e-6)
}

func TestPredictUnseenContextFallsBack(t *testing.T) {
	ids := []int32{0, 1, 0, 1}
	tr, err := Train(ids, 3)
	require.NoError(t, err)

	// ID 2 never appears, so the fallback is global frequencies.
	dist, err := tr.Predict([]int32{2})
	require.NoError(t, err)
	require.Len(t, dist, 3)
	assert.InDelta(t, 0.5, dist[0], 1e-6)
	assert.InDelta(t, 0.5, dist[1], 1e-6)
	assert.Equal(t, float32(0), dist[2])
}

func TestTrainFailures(t *testing.T) {
	_, err := Train([]int32{0}, 3)
	assert.ErrorIs(t, err, dataset.ErrInsufficientData)

	_, err = Train([]int32{0, 5}, 3)
	assert.Error(t, err, "out-of-range id must not be silently dropped")

	_, err = Train([]int32{0, 1}, 0)
	assert.Error(t, err)
}

func TestPredictEmptyWindow(t *testing.T) {
	tr, err := Train([]int32{0, 1}, 2)
	require.NoError(t, err)

	_, err = tr.Predict(nil)
	assert.Error(t, err)
}
