package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Width != 6 || cfg.Height != 6 {
		t.Errorf("default board is %dx%d, want 6x6", cfg.Width, cfg.Height)
	}
	if cfg.MaxPieceSize != 4 || cfg.MaxTiny != 1 || cfg.MaxTriples != 2 {
		t.Errorf("default budgets are %+v", cfg)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"width": 4, "height": 5, "maxTiny": -1}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 5 {
		t.Errorf("board is %dx%d, want 4x5", cfg.Width, cfg.Height)
	}
	if cfg.MaxTiny != -1 {
		t.Errorf("maxTiny = %d, want -1", cfg.MaxTiny)
	}
	// Unset fields keep their defaults.
	if cfg.MaxPieceSize != 4 || cfg.MaxTriples != 2 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Errorf("expected error for malformed JSON")
	}

	path = filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(path, []byte(`{"width": 0}`), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Errorf("expected error for a zero-width board")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		cfg Config
		ok  bool
	}{
		{Config{Width: 1, Height: 1, MaxPieceSize: 1}, true},
		{Config{Width: 6, Height: 6, MaxPieceSize: 4}, true},
		{Config{Width: 0, Height: 6, MaxPieceSize: 4}, false},
		{Config{Width: 6, Height: -1, MaxPieceSize: 4}, false},
		{Config{Width: 6, Height: 6, MaxPieceSize: 0}, false},
		{Config{Width: 6, Height: 6, MaxPieceSize: 5}, false},
	}
	for _, c := range cases {
		err := c.cfg.validate()
		if c.ok && err != nil {
			t.Errorf("%+v failed to validate: %v", c.cfg, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%+v validated unexpectedly", c.cfg)
		}
	}
}
