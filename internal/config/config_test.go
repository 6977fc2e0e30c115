// ABOUTME: Tests for config defaults, path expansion and persistence.
// ABOUTME: Redirects XDG paths into temp dirs.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.GetBackend() != "badger" {
		t.Errorf("default backend = %s, want badger", cfg.GetBackend())
	}
	if cfg.GetAnalyzeURL() != DefaultAnalyzeURL {
		t.Errorf("default analyze url = %s", cfg.GetAnalyzeURL())
	}

	cfg.Backend = "sqlite"
	if cfg.GetBackend() != "sqlite" {
		t.Errorf("backend = %s, want sqlite", cfg.GetBackend())
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load missing config: %v", err)
	}
	if cfg.Backend != "" {
		t.Errorf("fresh config should be empty, got %+v", cfg)
	}

	cfg.Backend = "sqlite"
	cfg.DataDir = "~/levelup-data"
	cfg.AnalyzeURL = "https://example.com/api/analyze"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.AnalyzeURL != "https://example.com/api/analyze" {
		t.Errorf("loaded config = %+v", loaded)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "mongodb"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenStoreBackends(t *testing.T) {
	for _, backend := range []string{"badger", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			cfg := &Config{Backend: backend, DataDir: t.TempDir()}
			store, err := cfg.OpenStore()
			if err != nil {
				t.Fatalf("OpenStore(%s): %v", backend, err)
			}
			if err := store.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}
}
