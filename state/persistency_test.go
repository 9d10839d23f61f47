package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainPersistency(t *testing.T) {
	p := NewChainPersistency(filepath.Join(t.TempDir(), "keeper.json"))

	keeperState, err := p.GetState()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), keeperState.LastHeight)
	assert.NotNil(t, keeperState.Performed)

	keeperState.LastHeight = 120
	keeperState.Performed["3"] = 118
	require.NoError(t, p.Save(keeperState))

	loaded, err := p.GetState()
	require.NoError(t, err)
	assert.Equal(t, keeperState, loaded)

	require.NoError(t, p.SaveHeight(130))
	height, err := p.GetHeight()
	require.NoError(t, err)
	assert.Equal(t, uint64(130), height)

	loaded, err = p.GetState()
	require.NoError(t, err)
	assert.Equal(t, uint64(118), loaded.Performed["3"], "saving the height keeps the performed upkeeps")
}

func TestChainPersistencyOldFormat(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keeper.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"lastHeight":42}`), 0o644))

	keeperState, err := NewChainPersistency(file).GetState()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), keeperState.LastHeight)
	assert.NotNil(t, keeperState.Performed)
}

func TestChainPersistencyCorrupt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keeper.json")
	require.NoError(t, os.WriteFile(file, []byte(`{`), 0o644))

	_, err := NewChainPersistency(file).GetState()
	assert.Error(t, err)
}
