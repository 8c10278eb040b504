package config

import (
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spacemeshos/smutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teacats/aoc2015/shared"
	"github.com/teacats/aoc2015/symbol"
)

const (
	EnvPrefix = "AOC"

	DefaultCapacity = "8K"
	DefaultUp       = "("
	DefaultDown     = ")"
)

type Config struct {
	InputPath string `mapstructure:"input"`
	// Size of the single chunk read from the input, e.g. "8K" or "8192".
	Capacity string `mapstructure:"capacity"`
	Up       string `mapstructure:"up"`
	Down     string `mapstructure:"down"`

	// Count the bytes after the last full word as up, as the word-at-a-time
	// counter always did.
	WordAligned bool `mapstructure:"word-aligned"`
	Mmap        bool `mapstructure:"mmap"`
}

func DefaultConfig() *Config {
	return &Config{
		InputPath: shared.DefaultInputPath,
		Capacity:  DefaultCapacity,
		Up:        DefaultUp,
		Down:      DefaultDown,
	}
}

func (cfg *Config) Validate() error {
	if cfg.InputPath == "" {
		return fmt.Errorf("invalid `input`; expected: a file path, given: %q", cfg.InputPath)
	}

	if _, err := cfg.CapacityBytes(); err != nil {
		return err
	}

	if len(cfg.Up) != 1 {
		return fmt.Errorf("invalid `up`; expected: a single byte, given: %q", cfg.Up)
	}
	if len(cfg.Down) != 1 {
		return fmt.Errorf("invalid `down`; expected: a single byte, given: %q", cfg.Down)
	}

	return cfg.Alphabet().Validate()
}

// CapacityBytes parses Capacity, accepting either a plain byte count or a
// human-readable size.
func (cfg *Config) CapacityBytes() (uint64, error) {
	capacity, err := strconv.ParseUint(cfg.Capacity, 10, 64)
	if err != nil {
		capacity, err = bytefmt.ToBytes(cfg.Capacity)
		if err != nil {
			return 0, shared.CapacityError{Param: "capacity", Value: cfg.Capacity, Reason: err.Error()}
		}
	}

	if capacity == 0 {
		return 0, shared.CapacityError{Param: "capacity", Value: cfg.Capacity, Reason: "expected: > 0"}
	}
	if capacity > shared.MaxCapacity {
		return 0, shared.CapacityError{
			Param:  "capacity",
			Value:  cfg.Capacity,
			Reason: fmt.Sprintf("expected: <= %d", shared.MaxCapacity),
		}
	}
	// Whole words only, so that the floor counter never sees a partial word
	// merely because of the buffer size.
	if !shared.IsWordAligned(capacity) {
		return 0, shared.CapacityError{
			Param:  "capacity",
			Value:  cfg.Capacity,
			Reason: fmt.Sprintf("expected: evenly divisible by %d", shared.WordSize),
		}
	}

	return capacity, nil
}

// Alphabet returns the configured symbols. Only meaningful after Validate.
func (cfg *Config) Alphabet() symbol.Alphabet {
	var a symbol.Alphabet
	if len(cfg.Up) > 0 {
		a.Up = cfg.Up[0]
	}
	if len(cfg.Down) > 0 {
		a.Down = cfg.Down[0]
	}
	return a
}

// Load builds the effective config. Precedence, highest first: changed flags,
// AOC_* environment variables, the config file, flag defaults, DefaultConfig.
func Load(fileLocation string, flags *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("input", cfg.InputPath)
	vip.SetDefault("capacity", cfg.Capacity)
	vip.SetDefault("up", cfg.Up)
	vip.SetDefault("down", cfg.Down)
	vip.SetDefault("word-aligned", cfg.WordAligned)
	vip.SetDefault("mmap", cfg.Mmap)

	if fileLocation != "" {
		vip.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := vip.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
