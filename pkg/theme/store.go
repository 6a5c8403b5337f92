package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Applier receives the preference after every mutation (and once at load),
// making the change observable outside the store: a GUI restyles its root,
// the CLI recolors its palette.
type Applier interface {
	Apply(Preference)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(Preference)

func (f ApplierFunc) Apply(p Preference) { f(p) }

// Store owns the theme preference for the process: loaded from disk at
// startup, persisted and re-applied on every mutation. Mutations are
// synchronous; there is no background work to tear down.
type Store struct {
	mu      sync.Mutex
	path    string
	applier Applier
	pref    Preference
}

// NewStore loads the preference from path, falling back to the default when
// the file is absent or malformed, and applies it once so the process starts
// styled. A nil applier is allowed.
func NewStore(path string, applier Applier) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("theme storage path is required")
	}

	s := &Store{path: path, applier: applier, pref: DefaultPreference()}

	data, err := os.ReadFile(path)
	if err == nil {
		var loaded Preference
		if json.Unmarshal(data, &loaded) == nil && loaded.valid() {
			s.pref = loaded
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read theme store: %w", err)
	}

	s.applyLocked()
	return s, nil
}

// Preference returns the current preference.
func (s *Store) Preference() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// SetMode sets the light/dark mode, persists, and applies.
func (s *Store) SetMode(m Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pref.Mode = m
	return s.commitLocked()
}

// SetBrightness sets the brightness, persists, and applies.
func (s *Store) SetBrightness(b Brightness) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pref.Brightness = b
	return s.commitLocked()
}

// Toggle flips between light and dark and returns the new mode.
func (s *Store) Toggle() (Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pref.Mode == ModeDark {
		s.pref.Mode = ModeLight
	} else {
		s.pref.Mode = ModeDark
	}
	return s.pref.Mode, s.commitLocked()
}

func (s *Store) commitLocked() error {
	if err := s.saveLocked(); err != nil {
		return err
	}
	s.applyLocked()
	return nil
}

func (s *Store) applyLocked() {
	if s.applier != nil {
		s.applier.Apply(s.pref)
	}
}

// saveLocked writes through a temp file and renames for an atomic update.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.pref, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile := s.path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	if err := os.Rename(tempFile, s.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
