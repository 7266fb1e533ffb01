// Package prefs persists user preferences in an INI file.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

const (
	sectionUI = "ui"
	keyLocale = "locale"
)

// Store reads and writes the preferences file at Path.
type Store struct {
	Path string
}

// DefaultPath returns ~/.config/comboplot/preferences.ini.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "comboplot", "preferences.ini"), nil
}

// NewStore returns a store for path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Locale returns the saved display language, or "" when none is saved or
// the file does not exist.
func (s *Store) Locale() (string, error) {
	cfg, err := s.load()
	if err != nil {
		return "", err
	}
	return cfg.Section(sectionUI).Key(keyLocale).String(), nil
}

// SetLocale saves the display language, keeping other settings.
func (s *Store) SetLocale(locale string) error {
	cfg, err := s.load()
	if err != nil {
		return err
	}
	cfg.Section(sectionUI).Key(keyLocale).SetValue(locale)

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	if err := cfg.SaveTo(s.Path); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// LanguageChanged saves tag. It has the shape of an i18n listener.
func (s *Store) LanguageChanged(tag language.Tag) error {
	return s.SetLocale(tag.String())
}

func (s *Store) load() (*ini.File, error) {
	cfg, err := ini.LooseLoad(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	return cfg, nil
}
