package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestStore_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "none.ini"))
	locale, err := s.Locale()
	require.NoError(t, err)
	assert.Empty(t, locale)
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.ini")
	s := NewStore(path)

	require.NoError(t, s.SetLocale("zh-CN"))
	locale, err := NewStore(path).Locale()
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", locale)

	require.NoError(t, s.LanguageChanged(language.AmericanEnglish))
	locale, err = s.Locale()
	require.NoError(t, err)
	assert.Equal(t, "en-US", locale)
}

func TestStore_KeepsOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.ini")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = dark\n\n[recent]\nfile = a.xlsx\n"), 0o644))

	require.NoError(t, NewStore(path).SetLocale("zh-CN"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.Contains(content, "theme"))
	assert.True(t, strings.Contains(content, "a.xlsx"))
	assert.True(t, strings.Contains(content, "zh-CN"))
}

func TestStore_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.ini")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nlocale"), 0o644))

	_, err := NewStore(path).Locale()
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/alice", ".config", "comboplot", "preferences.ini"), path)
}
