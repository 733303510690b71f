package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/noir/internal/toggle"
)

const (
	DefaultWidth   = 900
	DefaultHeight  = 600
	DefaultAsset   = "assets/atlantic-puffin.png"
	DefaultPeriod  = 180
	DefaultVariant = "threshold"
	DefaultFPS     = 60
	DefaultTitle   = "noir"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Asset   string        `yaml:"asset"`
	Toggle  ToggleConfig  `yaml:"toggle"`
	FPS     int           `yaml:"fps"`
	Title   string        `yaml:"title"`
	Logging LoggingConfig `yaml:"logging"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ToggleConfig struct {
	Period  int    `yaml:"period"`
	Variant string `yaml:"variant"`
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Asset:  DefaultAsset,
		Toggle: ToggleConfig{Period: DefaultPeriod, Variant: DefaultVariant},
		FPS:    DefaultFPS,
		Title:  DefaultTitle,
		Logging: LoggingConfig{
			Level: LevelNormal,
		},
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path on top of base, which is modified in place and
// returned. Keys missing from the file keep the values already in base.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = DefaultConfig()
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("config: unable to parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var err error
	if c.Canvas.Width < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: canvas width must be positive, got %d", ErrInvalidConfig, c.Canvas.Width))
	}
	if c.Canvas.Height < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: canvas height must be positive, got %d", ErrInvalidConfig, c.Canvas.Height))
	}
	if c.Asset == "" {
		err = multierr.Append(err, fmt.Errorf("%w: asset path is empty", ErrInvalidConfig))
	}
	if c.Toggle.Period < 1 {
		err = multierr.Append(err, &toggle.ConfigurationError{Field: "period", Value: c.Toggle.Period, Wrapped: toggle.ErrInvalidPeriod})
	}
	if _, verr := toggle.ParseVariant(c.Toggle.Variant); verr != nil {
		err = multierr.Append(err, verr)
	}
	if c.FPS < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS))
	}
	switch c.Logging.Level {
	case LevelNone, LevelNormal, LevelDebug:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level))
	}
	return err
}

// Variant returns the parsed toggle variant. Call Validate first.
func (c *Config) Variant() toggle.Variant {
	v, _ := toggle.ParseVariant(c.Toggle.Variant)
	return v
}
