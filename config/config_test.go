package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/teacats/aoc2015/config"
	"github.com/teacats/aoc2015/shared"
	"github.com/teacats/aoc2015/symbol"
)

func TestDefaultConfig(t *testing.T) {
	req := require.New(t)
	cfg := config.DefaultConfig()

	req.NoError(cfg.Validate())
	req.Equal(shared.DefaultInputPath, cfg.InputPath)
	req.Equal(symbol.DefaultAlphabet, cfg.Alphabet())

	capacity, err := cfg.CapacityBytes()
	req.NoError(err)
	req.Equal(uint64(shared.DefaultCapacity), capacity)
}

func TestValidate_Capacity(t *testing.T) {
	tests := []struct {
		capacity string
		want     uint64
		valid    bool
	}{
		{"8192", 8192, true},
		{"8K", 8192, true},
		{"1M", 1 << 20, true},
		{"64", 64, true},
		{"0", 0, false},
		{"7", 0, false},
		{"1000", 1000, true},
		{"eight", 0, false},
		{"4G", 0, false},
		{"1048576T", 0, false},
		{"2147483640", shared.MaxCapacity, true},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.capacity, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Capacity = tc.capacity

			capacity, err := cfg.CapacityBytes()
			if !tc.valid {
				require.Error(t, err)
				require.IsType(t, shared.CapacityError{}, err)
				require.Error(t, cfg.Validate())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, capacity)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_Symbols(t *testing.T) {
	req := require.New(t)

	cfg := config.DefaultConfig()
	cfg.Up = "(("
	req.ErrorContains(cfg.Validate(), "`up`")

	cfg = config.DefaultConfig()
	cfg.Down = ""
	req.ErrorContains(cfg.Validate(), "`down`")

	cfg = config.DefaultConfig()
	cfg.Down = "("
	req.ErrorIs(cfg.Validate(), shared.ErrInvalidAlphabet)

	cfg = config.DefaultConfig()
	cfg.Up, cfg.Down = "U", "u"
	req.NoError(cfg.Validate())
	req.Equal(symbol.Alphabet{Up: 'U', Down: 'u'}, cfg.Alphabet())
}

func TestValidate_InputPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputPath = ""
	require.ErrorContains(t, cfg.Validate(), "`input`")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "config.yaml")
	req.NoError(os.WriteFile(name, []byte("input: puzzle.txt\ncapacity: 16K\nword-aligned: true\n"), 0o600))

	cfg, err := config.Load(name, nil)
	req.NoError(err)
	req.Equal("puzzle.txt", cfg.InputPath)
	req.Equal("16K", cfg.Capacity)
	req.True(cfg.WordAligned)
	req.False(cfg.Mmap)
	req.Equal(config.DefaultUp, cfg.Up)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(name, []byte("capacity: 3\n"), 0o600))

	_, err := config.Load(name, nil)
	require.IsType(t, shared.CapacityError{}, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("AOC_INPUT", "from-env.txt")
	t.Setenv("AOC_MMAP", "true")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "from-env.txt", cfg.InputPath)
	require.True(t, cfg.Mmap)
}

func TestLoad_FlagsOverride(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "config.yaml")
	req.NoError(os.WriteFile(name, []byte("input: from-file.txt\ncapacity: 16K\n"), 0o600))
	t.Setenv("AOC_CAPACITY", "32K")

	defaults := config.DefaultConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input", defaults.InputPath, "")
	flags.String("capacity", defaults.Capacity, "")
	flags.Bool("mmap", defaults.Mmap, "")
	req.NoError(flags.Parse([]string{"--input", "from-flag.txt"}))

	cfg, err := config.Load(name, flags)
	req.NoError(err)
	req.Equal("from-flag.txt", cfg.InputPath)
	req.Equal("32K", cfg.Capacity)
	req.False(cfg.Mmap)
}
