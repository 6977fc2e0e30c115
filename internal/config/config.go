// ABOUTME: LevelUp configuration management with backend selection.
// ABOUTME: Handles settings, data paths, and the storage factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbwogus456-hub/levelup/internal/storage"
)

// DefaultAnalyzeURL is where `levelup serve` listens by default.
const DefaultAnalyzeURL = "http://localhost:8787/api/analyze"

// Config stores levelup tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. Badger puts its kv
	// directory here, sqlite puts levelup.db here. Supports ~ expansion.
	// Defaults to ~/.local/share/levelup.
	DataDir string `json:"data_dir,omitempty"`

	// AnalyzeURL is the mission/nudge endpoint the CLI posts to.
	AnalyzeURL string `json:"analyze_url,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetAnalyzeURL returns the configured endpoint or the local default.
func (c *Config) GetAnalyzeURL() string {
	if c.AnalyzeURL == "" {
		return DefaultAnalyzeURL
	}
	return c.AnalyzeURL
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store based on the configured backend.
func (c *Config) OpenStore() (*storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "kv"))
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(dataDir, "levelup.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "levelup", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
