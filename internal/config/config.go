package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration
type Config struct {
	Contacts ContactsConfig `toml:"contacts"`
	Sync     SyncConfig     `toml:"sync"`
	Log      LogConfig      `toml:"log"`
}

// ContactsConfig selects and parameterizes the contact fill strategy
type ContactsConfig struct {
	// Filler is one of: khard, pycarddav, sqlitedb, custom.
	// Empty means autodetect.
	Filler string `toml:"filler" env:"CARDPICK_FILLER"`

	// DatabasePath locates the contacts database for the sqlitedb filler
	DatabasePath string `toml:"database_path"`

	// Command is the argv for the custom filler
	Command []string `toml:"command"`
}

// SyncConfig selects and parameterizes the server sync strategy
type SyncConfig struct {
	// Syncer is one of: vdirsyncer, pycardsyncer, custom.
	// Empty means autodetect.
	Syncer string `toml:"syncer" env:"CARDPICK_SYNCER"`

	// Command is the argv for the custom syncer
	Command []string `toml:"command"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Path string `toml:"path" env:"CARDPICK_LOG"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Contacts: ContactsConfig{
			DatabasePath: filepath.Join(homeDir, ".config", "contacts", "contacts.db"),
		},
		Log: LogConfig{
			Path: filepath.Join(homeDir, ".local", "state", "cardpick", "cardpick.log"),
		},
	}
}

// Load loads configuration from the standard location, honoring the
// CARDPICK_CONFIG override.
func Load() (*Config, error) {
	if path := os.Getenv("CARDPICK_CONFIG"); path != "" {
		return LoadFrom(path)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "cardpick", "config.toml")
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path. A missing file
// yields the defaults; environment variables override whatever the
// file says.
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Environment overrides
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	// Expand home directory in paths
	if cfg.Contacts.DatabasePath != "" {
		cfg.Contacts.DatabasePath = expandPath(cfg.Contacts.DatabasePath)
	}
	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
