package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run
type Config struct {
	Rows          int           `json:"rows"`
	Cols          int           `json:"cols"`
	Generations   int           `json:"generations"`
	Filename      string        `json:"filename"`
	FrameRate     time.Duration `json:"frame_rate"`
	Parallel      bool          `json:"parallel"`
	UseMemoryPool bool          `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:          10,
		Cols:          10,
		Generations:   10,
		Filename:      "life.txt",
		FrameRate:     150 * time.Millisecond,
		Parallel:      false,
		UseMemoryPool: true,
	}
}

// LoadConfig loads configuration from JSON file, layered over the defaults
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

// Validate rejects configurations the engine cannot run. It is called before
// any allocation happens.
func (c Config) Validate() error {
	if c.Rows < 1 {
		return errors.Errorf("[Validate] rows must be positive, got: %d", c.Rows)
	}
	if c.Cols < 1 {
		return errors.Errorf("[Validate] cols must be positive, got: %d", c.Cols)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must be non-negative, got: %d", c.Generations)
	}
	if c.Filename == "" {
		return errors.Errorf("[Validate] filename must not be empty")
	}
	return nil
}

// ParseCount parses a positive integer argument
func ParseCount(arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "[ParseCount] not an integer: %+v", arg)
	}
	if value < 1 {
		return 0, errors.Errorf("[ParseCount] must be positive, got: %d", value)
	}
	return value, nil
}

// ParseNonNegative parses an integer argument that may be zero
func ParseNonNegative(arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "[ParseNonNegative] not an integer: %+v", arg)
	}
	if value < 0 {
		return 0, errors.Errorf("[ParseNonNegative] must be non-negative, got: %d", value)
	}
	return value, nil
}
