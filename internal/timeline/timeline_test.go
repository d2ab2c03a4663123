package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleOffsets(t *testing.T) {
	events, err := Assemble([]string{"C4", "0.4.7", "E4"}, 0.5)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, Event{Token: "C4", Offset: 0}, events[0])
	assert.Equal(t, Event{Token: "0.4.7", Offset: 0.5}, events[1])
	assert.Equal(t, Event{Token: "E4", Offset: 1.0}, events[2])
}

func TestAssembleEmpty(t *testing.T) {
	events, err := Assemble(nil, 0.5)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAssembleNegativeStep(t *testing.T) {
	_, err := Assemble([]string{"C4"}, -0.5)
	assert.ErrorIs(t, err, ErrNegativeStep)
}
