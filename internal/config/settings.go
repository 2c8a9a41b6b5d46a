package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds CLI defaults. Command-line flags override them.
type Settings struct {
	DefaultVariant string `yaml:"default_variant"`
	Mode           Mode   `yaml:"mode"`
	// UseOpeningCache lets sessions start from a stored opening guess instead
	// of recomputing it.
	UseOpeningCache bool   `yaml:"use_opening_cache"`
	DBPath          string `yaml:"db_path"`
	Workers         int    `yaml:"workers"` // 0 = GOMAXPROCS
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		DefaultVariant:  "wordle_5",
		Mode:            ModeVariant,
		UseOpeningCache: true,
		DBPath:          "~/.wordle/wordle.db",
	}
}

// DefaultSettingsPath returns ~/.wordle/settings.yaml, or empty if home is
// unavailable.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", "settings.yaml")
}

// LoadSettings reads the settings file at path, falling back to
// DefaultSettingsPath when path is empty. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		path = DefaultSettingsPath()
		if path == "" {
			return s, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: failed to parse settings %s: %w", path, err)
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return DefaultSettings(), err
	}
	if s.Mode == "" {
		s.Mode = ModeVariant
	}
	return s, nil
}

// Save writes the settings as YAML, creating the parent directory.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create settings directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write settings %s: %w", path, err)
	}
	return nil
}
