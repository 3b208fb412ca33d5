package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	first := NewFileStorage(path)
	_, ok, err := first.GetItem(KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.SetItem(KeyTheme, ThemeDark))
	require.NoError(t, first.SetItem(KeyFavorites, `["ia"]`))

	second := NewFileStorage(path)
	v, ok, err := second.GetItem(KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, v)

	favs, err := NewFavorites(second)
	require.NoError(t, err)
	assert.True(t, favs.IsFavorite("ia"))
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, _, err := NewFileStorage(path).GetItem(KeyTheme)
	assert.Error(t, err)

	_, err = NewFavorites(NewFileStorage(path))
	assert.Error(t, err)
}

func TestFileStorage_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStorage(filepath.Join(dir, "prefs.json"))
	require.NoError(t, s.SetItem(KeyTheme, ThemeLight))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefs.json", entries[0].Name())
}
