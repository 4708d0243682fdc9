// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName names the config and data directories.
const AppName = "countdown-tui"

// Storage backends.
const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendSQLite  = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where events are persisted.
type StorageConfig struct {
	// Backend is one of "file", "keyring" or "sqlite".
	Backend string `yaml:"backend"`

	// Path overrides the default file location for the file and sqlite backends.
	Path string `yaml:"path,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	// CellWidth is how many logical pixels one terminal column counts as
	// when measuring swipes.
	CellWidth int  `yaml:"cell_width"`
	ShowHints bool `yaml:"show_hints"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
		},
		UI: UIConfig{
			CellWidth: 10,
			ShowHints: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendKeyring, BackendSQLite:
	case "":
		c.Storage.Backend = BackendFile
	default:
		return fmt.Errorf("unknown storage backend %q (want file, keyring or sqlite)", c.Storage.Backend)
	}
	if c.UI.CellWidth <= 0 {
		c.UI.CellWidth = DefaultConfig().UI.CellWidth
	}
	return nil
}

// StoragePath returns the configured store location, or the default file
// inside the data directory for the selected backend.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(dir, "events.db"), nil
	}
	return filepath.Join(dir, "events.json"), nil
}

// LogPath returns the configured log file, or debug.log in the data directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}
