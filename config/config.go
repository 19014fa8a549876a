package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/turmite/parameter"
)

// Config holds the runner configuration. Flag values override file
// values; the zero Ticks means "run until interrupted" and the zero
// Seed means "derive from wall clock"
type Config struct {
	// Pattern is the turn-alphabet string, e.g. "RL" or "ruln"
	Pattern string `yaml:"pattern"`

	// Rate is the simulation tick rate in ticks per second
	Rate int `yaml:"rate"`

	// Ticks stops the run after this many ticks; 0 runs until signal
	Ticks uint64 `yaml:"ticks"`

	// Seed for the marker color generator; 0 selects a time-based seed
	Seed int64 `yaml:"seed"`
}

// Default returns the built-in configuration matching the classic
// Langton's ant setup
func Default() Config {
	return Config{
		Pattern: parameter.DefaultPattern,
		Rate:    parameter.DefaultTickRate,
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot start with.
// Pattern content itself is validated by pattern.Parse
func (c Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("config: pattern must not be empty")
	}
	if c.Rate <= 0 {
		return fmt.Errorf("config: rate must be positive, got %d", c.Rate)
	}
	if c.Rate > 1000 {
		return fmt.Errorf("config: rate %d exceeds maximum 1000 ticks/s", c.Rate)
	}
	return nil
}
