package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motif-ml/motif/internal/vocab"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "motif.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStreamRoundTrip(t *testing.T) {
	s := openTempStore(t)

	tokens := []string{"C4", "0.4.7", "E4", "C4"}
	require.NoError(t, s.SaveStream("bach", tokens))

	loaded, err := s.LoadStream("bach")
	require.NoError(t, err)
	assert.Equal(t, tokens, loaded, "stream must round-trip in order, duplicates included")
}

func TestSaveStreamReplaces(t *testing.T) {
	s := openTempStore(t)

	require.NoError(t, s.SaveStream("bach", []string{"C4", "E4"}))
	require.NoError(t, s.SaveStream("bach", []string{"G4"}))

	loaded, err := s.LoadStream("bach")
	require.NoError(t, err)
	assert.Equal(t, []string{"G4"}, loaded)
}

func TestLoadMissingStream(t *testing.T) {
	s := openTempStore(t)

	_, err := s.LoadStream("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListStreams(t *testing.T) {
	s := openTempStore(t)

	require.NoError(t, s.SaveStream("bach", []string{"C4"}))
	require.NoError(t, s.SaveStream("chopin", []string{"E4"}))

	names, err := s.ListStreams()
	require.NoError(t, err)
	assert.Equal(t, []string{"bach", "chopin"}, names)
}

func TestVocabRoundTrip(t *testing.T) {
	s := openTempStore(t)

	v, err := vocab.Build([]string{"G4", "C4", "0.4.7"})
	require.NoError(t, err)
	require.NoError(t, s.SaveVocab("bach", v))

	loaded, err := s.LoadVocab("bach")
	require.NoError(t, err)
	assert.Equal(t, v.Tokens(), loaded.Tokens(), "id order must survive persistence")

	_, err = s.LoadVocab("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
