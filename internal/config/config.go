// Package config loads the TOML configuration of the fibheap tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trim21/errgo"
)

// ErrInvalid is returned when a configuration file parses but holds
// unusable values.
var ErrInvalid = errors.New("config: invalid configuration")

// LogLevels lists the accepted values of log.level.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Display controls how heap dumps are rendered.
type Display struct {
	Color bool `toml:"color"`
}

// Log selects the logger level and output format.
type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Item is one element pre-inserted into the heap before a script runs.
type Item struct {
	Value    string `toml:"value"`
	Priority int64  `toml:"priority"`
}

// Heap holds elements inserted before the script runs.
type Heap struct {
	Seed []Item `toml:"seed"`
}

// Config is the whole configuration file.
type Config struct {
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
	Heap    Heap    `toml:"heap"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log: Log{Level: "warn"},
	}
}

// LoadFromFile reads path. A missing file is not an error and yields Default().
func LoadFromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Config{}, errgo.Wrap(err, "failed to read config file")
	}

	cfg, err := Parse(string(raw))
	if err != nil {
		return Config{}, errgo.Wrap(err, fmt.Sprintf("failed to load %s", path))
	}

	return cfg, nil
}

// Parse decodes a TOML document on top of Default() and validates it.
// Unknown keys are rejected so that typos do not pass silently.
func Parse(doc string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, errgo.Wrap(err, "failed to parse config file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges that TOML typing cannot express.
func (c Config) Validate() error {
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q, only %s is allowed", ErrInvalid, c.Log.Level, strings.Join(LogLevels, "/"))
	}

	for i, it := range c.Heap.Seed {
		if it.Value == "" {
			return fmt.Errorf("%w: heap.seed[%d] has an empty value", ErrInvalid, i)
		}
	}

	return nil
}
