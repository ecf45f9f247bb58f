package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeVector {
		t.Errorf("expected vector mode, got %s", cfg.Mode)
	}
	if cfg.HalfExtent != 3 {
		t.Errorf("expected half extent 3, got %v", cfg.HalfExtent)
	}
	if cfg.Animation.Start != -1 || cfg.Animation.Rate != 0.05 {
		t.Errorf("unexpected animation defaults %+v", cfg.Animation)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"mode", func(c *Config) { c.Mode = "svg" }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"extent", func(c *Config) { c.HalfExtent = -2 }},
		{"step", func(c *Config) { c.Step = 0 }},
		{"step too large", func(c *Config) { c.Step = 3 }},
		{"fps", func(c *Config) { c.FPS = 0 }},
		{"fps too large", func(c *Config) { c.FPS = 2000000000 }},
		{"start nan", func(c *Config) { c.Animation.Start = math.NaN() }},
		{"start inf", func(c *Config) { c.Animation.Start = math.Inf(1) }},
		{"rate inf", func(c *Config) { c.Animation.Rate = math.Inf(1) }},
		{"rate", func(c *Config) { c.Animation.Rate = 0 }},
		{"bounds", func(c *Config) { c.Animation.Lower, c.Animation.Upper = 2, -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := GetPreset("mobius")
	cfg.Width = 123
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Width != 123 || loaded.Transform != "mobius" {
		t.Errorf("loaded %+v", loaded)
	}
	if loaded.Params.B.Im != 0.5 {
		t.Errorf("params not round-tripped: %+v", loaded.Params)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("warp")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Mode != ModeRaster {
		t.Errorf("expected raster mode, got %s", cfg.Mode)
	}

	cfg.Width = 1
	if Presets["warp"].Width == 1 {
		t.Error("GetPreset returned the shared preset")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
