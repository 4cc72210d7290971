package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrNoModels indicates the configuration names no models at all.
var ErrNoModels = errors.New("config: at least one model is required")

// WindowConfig configures the showcase window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// ModelConfig names one showcased model and where to load it from. Paths may
// be local files or http(s) URLs.
type ModelConfig struct {
	Key  string `toml:"key"`
	Path string `toml:"path"`
}

// PrepareConfig configures model normalization.
type PrepareConfig struct {
	PrimaryScale   float32 `toml:"primary_scale"`
	SecondaryScale float32 `toml:"secondary_scale"`
	Roughness      float32 `toml:"roughness"`
	Metalness      float32 `toml:"metalness"`
}

// SectionConfig is one vertical stretch of the virtual page bound to a model
// key. Offsets are derived from the cumulative heights of earlier sections.
type SectionConfig struct {
	Height   float32 `toml:"height"`
	ModelKey string  `toml:"model"`
}

// LightConfig configures the key light and its shadow frustum.
type LightConfig struct {
	Direction  [3]float32 `toml:"direction"`
	Color      [3]float32 `toml:"color"`
	Intensity  float32    `toml:"intensity"`
	HalfExtent float32    `toml:"half_extent"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
}

// Config is the showcase's full configuration, loaded from TOML.
type Config struct {
	Window   WindowConfig    `toml:"window"`
	Primary  string          `toml:"primary"`
	Models   []ModelConfig   `toml:"models"`
	Prepare  PrepareConfig   `toml:"prepare"`
	Sections []SectionConfig `toml:"sections"`
	Light    LightConfig     `toml:"light"`

	// WheelSpeed is how far one wheel notch moves the page, in document units.
	WheelSpeed float32 `toml:"wheel_speed"`
	// Debug enables development logging.
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file overrides it.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Showroom",
			Width:  1280,
			Height: 720,
		},
		Prepare: PrepareConfig{
			PrimaryScale:   1.2,
			SecondaryScale: 0.8,
			Roughness:      0.6,
			Metalness:      0.1,
		},
		Light: LightConfig{
			Direction:  [3]float32{-0.3, -1, -0.2},
			Color:      [3]float32{1, 1, 1},
			Intensity:  1,
			HalfExtent: 10,
			Near:       0.1,
			Far:        100,
		},
		WheelSpeed: 120,
	}
}

// Load reads a TOML configuration file, layered over the defaults.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file cannot be read, parsed, or validated
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
//
// Returns:
//   - error: the first problem found, nil if the configuration is usable
func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return ErrNoModels
	}

	keys := make(map[string]bool, len(c.Models))
	for _, m := range c.Models {
		if m.Key == "" {
			return errors.New("config: model with empty key")
		}
		if m.Path == "" {
			return fmt.Errorf("config: model %q has no path", m.Key)
		}
		if keys[m.Key] {
			return fmt.Errorf("config: duplicate model key %q", m.Key)
		}
		keys[m.Key] = true
	}

	if c.Primary == "" {
		// The first model is primary when none is named.
		c.Primary = c.Models[0].Key
	}
	if !keys[c.Primary] {
		return fmt.Errorf("config: primary %q is not a configured model", c.Primary)
	}

	for i, s := range c.Sections {
		if s.Height <= 0 {
			return fmt.Errorf("config: section %d has non-positive height", i)
		}
		if !keys[s.ModelKey] {
			return fmt.Errorf("config: section %d references unknown model %q", i, s.ModelKey)
		}
	}
	return nil
}

// Catalog returns the model key to path map the asset pipeline loads from.
//
// Returns:
//   - map[string]string: key to source path
func (c *Config) Catalog() map[string]string {
	catalog := make(map[string]string, len(c.Models))
	for _, m := range c.Models {
		catalog[m.Key] = m.Path
	}
	return catalog
}
