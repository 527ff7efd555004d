package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	s := NewFileStore(path)

	_, ok, err := s.Get("turnos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("turnos", `[{"id":"1"}]`))

	v, ok, err := s.Get("turnos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	// A fresh store over the same file sees the persisted value.
	v, ok, err = NewFileStore(path).Get("turnos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestFileStoreSetReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set("k", "first"))
	require.NoError(t, s.Set("k", "second"))

	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, _, err := NewFileStore(path).Get("k")
	assert.Error(t, err)
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("k", "v"))

	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
