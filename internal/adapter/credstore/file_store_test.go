package credstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, store.Save("eyJ.header.payload"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "eyJ.header.payload", got)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, store.Save("first"))
	require.NoError(t, store.Save("second"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
