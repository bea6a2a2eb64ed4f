// Package prefs persists process-wide UI preferences, currently just the
// dark/light theme: read once at startup, written back on every change.
package prefs

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type (
	prefsFile struct {
		Theme string `json:"theme"`
	}

	Store struct {
		mu    sync.Mutex
		path  string
		theme string
	}
)

// Open reads the preference file at path. A missing file is not an error;
// defaults apply until the first change is written.
func Open(path string) (*Store, error) {
	s := &Store{path: path, theme: ThemeLight}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var file prefsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if file.Theme == ThemeDark {
		s.theme = ThemeDark
	}
	return s, nil
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) SetTheme(theme string) error {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return s.write()
}

// Toggle flips the theme and returns the new value.
func (s *Store) Toggle() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme, s.write()
}

// write holds s.mu
func (s *Store) write() error {
	data, err := json.Marshal(prefsFile{Theme: s.theme})
	if err != nil {
		return errors.Wrap(err, "encoding prefs")
	}
	return errors.Wrapf(os.WriteFile(s.path, data, 0o644), "writing %s", s.path)
}
