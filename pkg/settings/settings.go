// Package settings provides persistent launcher configuration, stored at
// ~/.config/solsense/config.yaml. Every field is optional; the zero value
// reproduces the stock launch flow.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the current config schema version.
const Version = "1.0"

const (
	// ConfigDirName is the name of the config directory.
	ConfigDirName = "solsense"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.yaml"
)

// Settings represents the launcher configuration.
type Settings struct {
	Version     string   `yaml:"version"`
	Interpreter string   `yaml:"interpreter,omitempty"` // Python interpreter override; "" = auto-detect
	EntryFile   string   `yaml:"entry_file,omitempty"`  // App entry point; "" = main.py
	PipArgs     []string `yaml:"pip_args,omitempty"`    // Extra args for every pip install call
	AppLog      string   `yaml:"app_log,omitempty"`     // Child stdout/stderr destination; "" = null device
	Probe       Probe    `yaml:"probe,omitempty"`       // Liveness probe tuning
}

// Probe tunes the post-launch supervision window. Values are plain
// milliseconds so the YAML stays hand-editable.
type Probe struct {
	WindowMS   int `yaml:"window_ms,omitempty"`   // how long to watch the child; 0 = 3000
	IntervalMS int `yaml:"interval_ms,omitempty"` // poll interval; 0 = 250
}

// Window returns the probe window as a duration (0 when unset).
func (p Probe) Window() time.Duration {
	return time.Duration(p.WindowMS) * time.Millisecond
}

// Interval returns the poll interval as a duration (0 when unset).
func (p Probe) Interval() time.Duration {
	return time.Duration(p.IntervalMS) * time.Millisecond
}

// New creates Settings with defaults.
func New() *Settings {
	return &Settings{Version: Version}
}

// ConfigDir returns the config directory, honoring XDG_CONFIG_HOME.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// ConfigPath returns the config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the config file. A missing file is not an error: defaults
// are returned so the launcher works with zero configuration.
func Load() (*Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path (for testing).
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if s.Version == "" {
		s.Version = Version
	}
	return &s, nil
}

// Save writes the config file, creating the directory as needed.
func (s *Settings) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to resolve config dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.SaveTo(filepath.Join(dir, ConfigFileName))
}

// SaveTo writes the config to an explicit path (for testing).
func (s *Settings) SaveTo(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Entry returns the configured entry file or the default.
func (s *Settings) Entry() string {
	if s.EntryFile != "" {
		return s.EntryFile
	}
	return "main.py"
}
