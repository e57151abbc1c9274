package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(KeyPromoCodes)
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`[{"id":"p-1","code":"KSA99"}]`)
	require.NoError(t, store.Set(KeyPromoCodes, payload))

	got, ok, err := store.Get(KeyPromoCodes)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyChatSettings, []byte(`{"a":1}`)))
	require.NoError(t, store.Set(KeyChatSettings, []byte(`{"a":2}`)))

	got, ok, err := store.Get(KeyChatSettings)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":2}`), got)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyChatBans, []byte(`[]`)))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	got, ok, err := reopened.Get(KeyChatBans)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), got)

	// keys map to one json file each
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyChatBans+".json", filepath.Base(entries[0].Name()))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	value := []byte(`{"x":1}`)
	require.NoError(t, store.Set(KeyChatSettings, value))
	value[0] = '!'

	got, ok, err := store.Get(KeyChatSettings)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"x":1}`), got)
}
