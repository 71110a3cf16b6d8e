// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/glprim/pkg/geometry"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Shapes  ShapesConfig  `yaml:"shapes"`
	Scene   []ShapeEntry  `yaml:"scene"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ShapesConfig holds the resolution every scene entry starts from.
type ShapesConfig struct {
	Longitude int  `yaml:"longitude"`
	Latitude  int  `yaml:"latitude"`
	Radial    int  `yaml:"radial"`
	Caps      bool `yaml:"caps"`
}

// Params converts the defaults into kernel parameters.
func (s ShapesConfig) Params() geometry.Params {
	return geometry.Params{
		Longitude: s.Longitude,
		Latitude:  s.Latitude,
		Radial:    s.Radial,
		Caps:      s.Caps,
	}
}

// ShapeEntry describes one shape placed in the scene. Zero values mean
// "use the default".
type ShapeEntry struct {
	Name string        `yaml:"name,omitempty"`
	Kind geometry.Kind `yaml:"kind"`
	// Scale holds one uniform factor or three per-axis factors.
	Scale     []float32     `yaml:"scale,omitempty"`
	Translate []float32     `yaml:"translate,omitempty"`
	Rotate    *RotateConfig `yaml:"rotate,omitempty"`
	Longitude int           `yaml:"longitude,omitempty"`
	Latitude  int           `yaml:"latitude,omitempty"`
	Radial    int           `yaml:"radial,omitempty"`
	Caps      *bool         `yaml:"caps,omitempty"`
}

// Label returns the entry name, falling back to its kind.
func (e ShapeEntry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Kind.String()
}

// RotateConfig is an axis-angle rotation in degrees.
type RotateConfig struct {
	Axis    [3]float32 `yaml:"axis"`
	Degrees float32    `yaml:"degrees"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "glprim",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Shapes: ShapesConfig{
			Longitude: geometry.DefaultLongitude,
			Latitude:  geometry.DefaultLatitude,
			Radial:    geometry.DefaultRadial,
			Caps:      true,
		},
		Scene: DefaultScene(),
	}
}

// DefaultScene lays out one of every kind in a row along X.
func DefaultScene() []ShapeEntry {
	kinds := geometry.Kinds()
	scene := make([]ShapeEntry, 0, len(kinds))
	offset := -float32(len(kinds)-1) * 0.75
	for i, k := range kinds {
		scene = append(scene, ShapeEntry{
			Kind:      k,
			Translate: []float32{offset + float32(i)*1.5, 0, 0},
		})
	}
	return scene
}

// Validate checks structural problems a shape builder cannot report on its
// own. Numeric ranges are left to the builders.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	for _, k := range geometry.Kinds() {
		if err := c.Shapes.Params().Validate(k); err != nil {
			errs = append(errs, fmt.Errorf("shapes: %w", err))
		}
	}
	for i, e := range c.Scene {
		if err := e.validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (e ShapeEntry) validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("unknown kind %s", e.Kind)
	}
	if n := len(e.Scale); n != 0 && n != 1 && n != 3 {
		return fmt.Errorf("%s: scale needs 1 or 3 values, got %d", e.Label(), n)
	}
	if n := len(e.Translate); n != 0 && n != 3 {
		return fmt.Errorf("%s: translate needs 3 values, got %d", e.Label(), n)
	}
	return nil
}
