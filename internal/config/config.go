// Package config loads astrolabe settings from defaults, the config file,
// ASTROLABE_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates a configuration value Load cannot accept.
var ErrInvalidConfig = errors.New("invalid configuration")

// Location holds the default birth place used when a command or batch
// entry does not give one.
type Location struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	TZOffset  float64 `mapstructure:"tz_offset"`
}

// Config holds all runtime configuration for astrolabe.
// Values are populated from .astrolabe.yaml, ASTROLABE_* env vars, and CLI flags.
type Config struct {
	HouseSystem        string  `mapstructure:"house_system"`
	Obliquity          float64 `mapstructure:"obliquity"`
	PlacidusIterations int     `mapstructure:"placidus_iterations"`
	Workers            int     `mapstructure:"workers"`
	Verbose            bool    `mapstructure:"verbose"`
	Location           `mapstructure:",squash"`
}

// System returns the configured house system.
func (c Config) System() houses.System {
	s, err := houses.ParseSystem(c.HouseSystem)
	if err != nil {
		return houses.Placidus
	}
	return s
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("house_system", "placidus")
	viper.SetDefault("tz_offset", 8.0)
	viper.SetDefault("latitude", 25.03)
	viper.SetDefault("longitude", 121.56)
	viper.SetDefault("obliquity", 0.0)
	viper.SetDefault("placidus_iterations", houses.DefaultMaxIterations)
	viper.SetDefault("workers", 4)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := houses.ParseSystem(c.HouseSystem); err != nil {
		return fmt.Errorf("config: house_system: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.PlacidusIterations < 1 {
		return fmt.Errorf("config: placidus_iterations %d: %w", c.PlacidusIterations, ErrInvalidConfig)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("config: latitude %v: %w", c.Latitude, ErrInvalidConfig)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("config: longitude %v: %w", c.Longitude, ErrInvalidConfig)
	}
	return nil
}
