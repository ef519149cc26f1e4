package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ProgressDuration != 500*time.Millisecond {
		t.Errorf("Expected ProgressDuration 500ms, got %v", cfg.ProgressDuration)
	}
	if cfg.FadeDuration != 800*time.Millisecond {
		t.Errorf("Expected FadeDuration 800ms, got %v", cfg.FadeDuration)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("Expected FrameInterval 16ms, got %v", cfg.FrameInterval)
	}
	if cfg.PulsePeak != 1.4 {
		t.Errorf("Expected PulsePeak 1.4, got %v", cfg.PulsePeak)
	}
	if cfg.SpringDamping >= 1 {
		t.Errorf("Expected an underdamped spring, got damping %v", cfg.SpringDamping)
	}
	if !cfg.EnableMouse {
		t.Error("Expected EnableMouse to be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		field   string
		wantErr bool
	}{
		{"valid default config", Default(), "", false},
		{"zero progress duration", Default().WithProgressDuration(0), "ProgressDuration", true},
		{"negative fade duration", Default().WithFadeDuration(-time.Second), "FadeDuration", true},
		{"zero frame interval", Default().WithFrameInterval(0), "FrameInterval", true},
		{"zero spring frequency", Default().WithSpring(0, 0.5), "SpringFrequency", true},
		{"zero spring damping", Default().WithSpring(9, 0), "SpringDamping", true},
		{"peak at rest", func() Config { c := Default(); c.PulsePeak = 1; return c }(), "PulsePeak", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestWithSettersDoNotMutate(t *testing.T) {
	base := Default()
	_ = base.WithMouse(false).WithProgressDuration(time.Second)

	if !base.EnableMouse || base.ProgressDuration != 500*time.Millisecond {
		t.Error("With* setters modified the receiver")
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("progress_ms: 250\nfade_ms: 400\nmouse: false\nspring_damping: 0.3\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.ProgressDuration != 250*time.Millisecond {
		t.Errorf("Expected ProgressDuration 250ms, got %v", cfg.ProgressDuration)
	}
	if cfg.FadeDuration != 400*time.Millisecond {
		t.Errorf("Expected FadeDuration 400ms, got %v", cfg.FadeDuration)
	}
	if cfg.EnableMouse {
		t.Error("Expected EnableMouse false")
	}
	if cfg.SpringDamping != 0.3 {
		t.Errorf("Expected SpringDamping 0.3, got %v", cfg.SpringDamping)
	}
	// Untouched fields keep their defaults.
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("Expected default FrameInterval, got %v", cfg.FrameInterval)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("fade_ms: 0\n")); err == nil {
		t.Error("Expected validation error for zero fade")
	}
	if _, err := Parse([]byte("fade_ms: [1, 2\n")); err == nil {
		t.Error("Expected yaml parse error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v; want defaults", cfg)
	}

	path := filepath.Join(dir, "moodboost.yaml")
	if err := os.WriteFile(path, []byte("pulse_peak: 1.6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PulsePeak != 1.6 {
		t.Errorf("Expected PulsePeak 1.6, got %v", cfg.PulsePeak)
	}

	if cfg, err := Load(""); err != nil || cfg != Default() {
		t.Errorf("Load(\"\") = %+v, %v; want defaults", cfg, err)
	}
}
