// Package config loads and stores the lumistrip YAML configuration.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lumistrip/lumistrip/led"
)

// Strip orientation values.
const (
	OrientationClockwise        = "clockwise"
	OrientationCounterClockwise = "counter-clockwise"
)

// Defaults applied by Validate for zero-valued fields.
const (
	DefaultScreenResX = 3840
	DefaultScreenResY = 2160
	DefaultOsScaling  = 100
	DefaultGroupBy    = 1
	DefaultMatrixName = "FullScreen"
)

// Config holds the settings the calibration pattern and display selection
// depend on. OsScaling is a percentage, 100 meaning no scaling.
type Config struct {
	ScreenResX       int                   `yaml:"screenResX"`
	ScreenResY       int                   `yaml:"screenResY"`
	OsScaling        int                   `yaml:"osScaling"`
	MonitorNumber    int                   `yaml:"monitorNumber"`
	LedStartOffset   int                   `yaml:"ledStartOffset"`
	Orientation      string                `yaml:"orientation"`
	GroupBy          int                   `yaml:"groupBy"`
	DefaultLedMatrix string                `yaml:"defaultLedMatrix"`
	LedMatrix        map[string]led.Matrix `yaml:"ledMatrix"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, raw, 0o644), "write config")
}

// Validate fills defaults for zero values and rejects settings the layout
// math cannot work with.
func (c *Config) Validate() error {
	if c.ScreenResX <= 0 {
		c.ScreenResX = DefaultScreenResX
	}
	if c.ScreenResY <= 0 {
		c.ScreenResY = DefaultScreenResY
	}
	if c.OsScaling <= 0 {
		c.OsScaling = DefaultOsScaling
	}
	if c.GroupBy < 1 {
		c.GroupBy = DefaultGroupBy
	}
	if c.Orientation == "" {
		c.Orientation = OrientationClockwise
	}
	if c.Orientation != OrientationClockwise && c.Orientation != OrientationCounterClockwise {
		return errors.Errorf("config: unknown orientation %q", c.Orientation)
	}
	if c.LedStartOffset < 0 {
		return errors.New("config: ledStartOffset must not be negative")
	}
	if c.DefaultLedMatrix == "" {
		c.DefaultLedMatrix = DefaultMatrixName
	}
	return nil
}

// MatrixInUse returns the named LED matrix, falling back to the configured
// default when name is empty.
func (c *Config) MatrixInUse(name string) (led.Matrix, error) {
	if name == "" {
		name = c.DefaultLedMatrix
	}
	m, ok := c.LedMatrix[name]
	if !ok || len(m) == 0 {
		return nil, errors.Errorf("config: led matrix %q not found", name)
	}
	return m, nil
}
