package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Expected file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.UI.CellWidth != 10 || !cfg.UI.ShowHints {
		t.Errorf("Unexpected UI defaults: %+v", cfg.UI)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantErr   bool
		backend   string
		cellWidth int
	}{
		{
			name:      "sqlite backend",
			yaml:      "storage:\n  backend: sqlite\n  path: /tmp/x.db\nui:\n  cell_width: 8\n",
			backend:   BackendSQLite,
			cellWidth: 8,
		},
		{
			name:      "non-positive cell width falls back",
			yaml:      "ui:\n  cell_width: 0\n",
			backend:   BackendFile,
			cellWidth: 10,
		},
		{
			name:    "unknown backend",
			yaml:    "storage:\n  backend: postgres\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "storage: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFile(path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			if cfg.Storage.Backend != tt.backend {
				t.Errorf("Expected backend %q, got %q", tt.backend, cfg.Storage.Backend)
			}
			if cfg.UI.CellWidth != tt.cellWidth {
				t.Errorf("Expected cell width %d, got %d", tt.cellWidth, cfg.UI.CellWidth)
			}
		})
	}
}

func TestStoragePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := DefaultConfig()
	path, err := cfg.StoragePath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "events.json" {
		t.Errorf("Expected events.json, got %s", path)
	}

	cfg.Storage.Backend = BackendSQLite
	path, _ = cfg.StoragePath()
	if filepath.Base(path) != "events.db" {
		t.Errorf("Expected events.db, got %s", path)
	}

	cfg.Storage.Path = "/custom/events.db"
	path, _ = cfg.StoragePath()
	if path != "/custom/events.db" {
		t.Errorf("Expected override, got %s", path)
	}
}
