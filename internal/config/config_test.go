package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("Expected default lives 5, got %d", cfg.Player.Lives)
	}
	if cfg.Coins.Count != 5 {
		t.Errorf("Expected default coin count 5, got %d", cfg.Coins.Count)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	data := `
[player]
lives = 3
speed = 0.25

[obstacles]
lanes = [-6.0, 0.0, 6.0]
gap = 1
`
	path := filepath.Join(t.TempDir(), "jumpman.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Player.Lives != 3 {
		t.Errorf("Expected lives 3, got %d", cfg.Player.Lives)
	}
	if cfg.Player.Speed != 0.25 {
		t.Errorf("Expected speed 0.25, got %f", cfg.Player.Speed)
	}
	if len(cfg.Obstacles.Lanes) != 3 {
		t.Errorf("Expected 3 lanes, got %d", len(cfg.Obstacles.Lanes))
	}
	// Untouched sections keep their defaults
	if cfg.Camera.FieldOfView != 80 {
		t.Errorf("Expected default field of view 80, got %f", cfg.Camera.FieldOfView)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"gap out of range", "[obstacles]\nlanes = [0.0]\ngap = 4\n"},
		{"zero boundary step", "[collision]\nboundary_step = 0.0\n"},
		{"negative boundary step", "[collision]\nboundary_step = -0.1\n"},
		{"zero speed", "[player]\nspeed = 0.0\n"},
		{"zero hit distance", "[collision]\nhit_distance = 0.0\n"},
		{"zero grace window", "[collision]\ngrace_window = 0.0\n"},
		{"zero pushback", "[collision]\npushback = 0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := LoadConfig(path)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[player\nlives = "), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected parse error for malformed file")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}
