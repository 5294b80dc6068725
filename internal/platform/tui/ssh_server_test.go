package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-puzzles/internal/config"
)

func TestNewAdventureWorld(t *testing.T) {
	layout := []string{
		"#####",
		"#@12#",
		"#####",
	}
	tests := []struct {
		name     string
		triggers map[string]string
		wantErr  string
	}{
		{"all known", map[string]string{"1": "sliding", "2": "connector"}, ""},
		{"unknown puzzle", map[string]string{"1": "sliding", "2": "sudoku"}, `unknown puzzle "sudoku"`},
		{"missing trigger", map[string]string{"1": "sliding"}, `trigger "2" has no puzzle`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewAdventureWorld(config.WorldConfig{Layout: layout, Triggers: tt.triggers})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewAdventureWorld: %v", err)
				}
				if w.TriggerCount() != 2 {
					t.Errorf("TriggerCount() = %d, expected 2", w.TriggerCount())
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, expected it to mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestNewSSHServerRejectsBadWorld(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "solves.db")
	cfg.World.Triggers = map[string]string{}

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("expected an error for a world with unmapped triggers")
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "solves.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.Online() != 0 {
		t.Errorf("Online() = %d, expected 0", srv.Online())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
