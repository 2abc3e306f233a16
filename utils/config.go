package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Size              int           `json:"size"`
	Delay             time.Duration `json:"delay"`
	StartDelay        time.Duration `json:"start_delay"`
	RandomProbability float64       `json:"random_probability"`
	Seed              uint64        `json:"seed"`
	Workers           int           `json:"workers"`
	MaxGenerations    int           `json:"max_generations"`
	ShowStats         bool          `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:              30,
		Delay:             2 * time.Second,
		StartDelay:        1 * time.Second,
		RandomProbability: 0.2,
		Seed:              0, // Seed from the clock
		Workers:           1,
		MaxGenerations:    0, // Run until interrupted
		ShowStats:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first field that cannot drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %d", c.Size)
	case c.Delay < 0:
		return errors.Wrapf(ErrInvalidConfig, "delay must not be negative, got %s", c.Delay)
	case c.StartDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "start_delay must not be negative, got %s", c.StartDelay)
	case c.RandomProbability < 0 || c.RandomProbability > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_probability must be within [0, 1], got %v", c.RandomProbability)
	case c.Workers <= 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
