package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig marks a configuration the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	BoardSize  int           `json:"board_size"`
	Iterations int           `json:"iterations"`
	SleepTime  time.Duration `json:"sleep_time"`
	AliveCells int           `json:"alive_cells"`
	RandomSeed int           `json:"random_seed"`
	OutputPath string        `json:"output_path"`
	UsePool    bool          `json:"use_pool"`
	Quiet      bool          `json:"quiet"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardSize:  150,
		Iterations: 100,
		SleepTime:  200 * time.Millisecond,
		AliveCells: 2500,
		RandomSeed: 42,
		OutputPath: "game_of_life.gif",
		UsePool:    true,
		Quiet:      false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the constraints the simulation relies on
func (c Config) Validate() error {
	switch {
	case c.BoardSize < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board size must be at least 1, got %d", c.BoardSize)
	case c.Iterations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] iterations must not be negative, got %d", c.Iterations)
	case c.SleepTime < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] sleep time must not be negative, got %v", c.SleepTime)
	case c.AliveCells < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive cells must not be negative, got %d", c.AliveCells)
	case c.RandomSeed < 0 || c.RandomSeed > math.MaxUint8:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random seed must be in [0, 255], got %d", c.RandomSeed)
	case c.OutputPath == "":
		return errors.Wrap(ErrInvalidConfig, "[Validate] output path must not be empty")
	}
	return nil
}

// Seed returns the random seed as the 8-bit value the board expects
func (c Config) Seed() uint8 {
	return uint8(c.RandomSeed)
}

// FrameDelay returns the sleep time in GIF delay units (hundredths of a second)
func (c Config) FrameDelay() int {
	return int(c.SleepTime / (10 * time.Millisecond))
}
