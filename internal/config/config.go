package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable timings of the mood screen.
// Use Default() to get the stock values, then override as needed.
type Config struct {
	// Transitions
	ProgressDuration time.Duration // Face transition between moods (default: 500ms)
	FadeDuration     time.Duration // Joke panel fade-in (default: 800ms)
	FrameInterval    time.Duration // Frame clock period (default: 16ms)

	// Dot pulse spring
	PulsePeak       float64 // Scale the dot overshoots toward (default: 1.4)
	SpringFrequency float64 // Angular frequency (default: 10.0)
	SpringDamping   float64 // Damping ratio, < 1 overshoots (default: 0.5)

	// Input
	EnableMouse bool // Whether clicks on dots select moods (default: true)
}

// Default returns a Config with the stock timings.
func Default() Config {
	return Config{
		ProgressDuration: 500 * time.Millisecond,
		FadeDuration:     800 * time.Millisecond,
		FrameInterval:    16 * time.Millisecond,

		PulsePeak:       1.4,
		SpringFrequency: 10.0,
		SpringDamping:   0.5,

		EnableMouse: true,
	}
}

// WithProgressDuration returns a copy of the config with a modified face transition duration.
func (c Config) WithProgressDuration(d time.Duration) Config {
	c.ProgressDuration = d
	return c
}

// WithFadeDuration returns a copy of the config with a modified fade duration.
func (c Config) WithFadeDuration(d time.Duration) Config {
	c.FadeDuration = d
	return c
}

// WithFrameInterval returns a copy of the config with a modified frame interval.
func (c Config) WithFrameInterval(d time.Duration) Config {
	c.FrameInterval = d
	return c
}

// WithSpring returns a copy of the config with modified spring parameters.
func (c Config) WithSpring(frequency, damping float64) Config {
	c.SpringFrequency = frequency
	c.SpringDamping = damping
	return c
}

// WithMouse returns a copy of the config with mouse input enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.EnableMouse = enabled
	return c
}

// Validate checks if the configuration is usable and returns an error if not.
func (c Config) Validate() error {
	if c.ProgressDuration <= 0 {
		return &ConfigError{Field: "ProgressDuration", Message: "must be positive"}
	}
	if c.FadeDuration <= 0 {
		return &ConfigError{Field: "FadeDuration", Message: "must be positive"}
	}
	if c.FrameInterval <= 0 {
		return &ConfigError{Field: "FrameInterval", Message: "must be positive"}
	}
	if c.PulsePeak <= 1 {
		return &ConfigError{Field: "PulsePeak", Message: "must be greater than 1"}
	}
	if c.SpringFrequency <= 0 {
		return &ConfigError{Field: "SpringFrequency", Message: "must be positive"}
	}
	if c.SpringDamping <= 0 {
		return &ConfigError{Field: "SpringDamping", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

type yamlConfig struct {
	ProgressMillis  *int     `yaml:"progress_ms"`
	FadeMillis      *int     `yaml:"fade_ms"`
	FrameMillis     *int     `yaml:"frame_ms"`
	PulsePeak       *float64 `yaml:"pulse_peak"`
	SpringFrequency *float64 `yaml:"spring_frequency"`
	SpringDamping   *float64 `yaml:"spring_damping"`
	Mouse           *bool    `yaml:"mouse"`
}

// Load reads a YAML config file on top of Default().
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	cfg, err = Parse(raw)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Parse decodes YAML config bytes on top of Default() and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()

	var file yamlConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	applyYaml(&cfg, file)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyYaml(cfg *Config, file yamlConfig) {
	if file.ProgressMillis != nil {
		cfg.ProgressDuration = time.Duration(*file.ProgressMillis) * time.Millisecond
	}
	if file.FadeMillis != nil {
		cfg.FadeDuration = time.Duration(*file.FadeMillis) * time.Millisecond
	}
	if file.FrameMillis != nil {
		cfg.FrameInterval = time.Duration(*file.FrameMillis) * time.Millisecond
	}
	if file.PulsePeak != nil {
		cfg.PulsePeak = *file.PulsePeak
	}
	if file.SpringFrequency != nil {
		cfg.SpringFrequency = *file.SpringFrequency
	}
	if file.SpringDamping != nil {
		cfg.SpringDamping = *file.SpringDamping
	}
	if file.Mouse != nil {
		cfg.EnableMouse = *file.Mouse
	}
}
