// Package settings persists the player's menu preferences as a small JSON
// document under the user's home directory.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the toggles the start menu edits. Zero values are not
// meaningful defaults; use Default.
type Settings struct {
	MusicEnabled bool   `json:"music_enabled"`
	SfxEnabled   bool   `json:"sfx_enabled"`
	BowType      string `json:"bow_type"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		MusicEnabled: true,
		SfxEnabled:   true,
		BowType:      "base",
	}
}

// DefaultPath returns ~/.archery/settings.json, or empty when the home
// directory is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".archery", "settings.json")
}

// Load reads settings from path. A missing or unreadable file yields the
// defaults without error; only a present-but-corrupt file is reported so
// the caller can decide whether to overwrite it.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: failed to parse %s: %w", path, err)
	}
	if s.BowType == "" {
		s.BowType = Default().BowType
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if path == "" {
		return fmt.Errorf("settings: no path to save to")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: failed to encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: failed to write %s: %w", path, err)
	}
	return nil
}
