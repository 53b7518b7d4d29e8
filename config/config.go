// Package config provides configuration loading and access for the effects.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters for the background effects.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Smoke     SmokeConfig     `yaml:"smoke"`
	Embers    EmbersConfig    `yaml:"embers"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SmokeConfig holds smoke shader parameters. The noise constants themselves
// (octaves, gain, initial amplitude) are baked into the fragment source and
// mirrored by the noise package; this section carries the per-instance knobs.
type SmokeConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EmbersConfig holds ember particle parameters. These are tuned visual
// constants and are kept as named settings rather than inferred.
type EmbersConfig struct {
	Count         int     `yaml:"count"`           // fixed population size
	WrapMargin    float64 `yaml:"wrap_margin"`     // horizontal wrap margin in pixels
	LoopChance    float64 `yaml:"loop_chance"`     // probability a respawned ember orbits
	LoopRadiusMin float64 `yaml:"loop_radius_min"` // orbit radius range, pixels
	LoopRadiusMax float64 `yaml:"loop_radius_max"`
	RadiusMin     float64 `yaml:"radius_min"` // base glow radius range, pixels
	RadiusMax     float64 `yaml:"radius_max"`
	SpeedMin      float64 `yaml:"speed_min"` // vertical rise per step, pixels
	SpeedMax      float64 `yaml:"speed_max"`
	DriftMax      float64 `yaml:"drift_max"`     // max |horizontal drift| per step
	AngularMin    float64 `yaml:"angular_min"`   // orbit angle advance per step, radians
	AngularMax    float64 `yaml:"angular_max"`
	FlickerSpeed  float64 `yaml:"flicker_speed"` // radians per second
	FlickerBase   float64 `yaml:"flicker_base"`  // flicker = base + amp*sin(...)
	FlickerAmp    float64 `yaml:"flicker_amp"`   // must satisfy base > amp
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // ticks in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
