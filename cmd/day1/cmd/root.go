package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teacats/aoc2015/config"
	"github.com/teacats/aoc2015/input"
	"github.com/teacats/aoc2015/shared"
)

var (
	Version = "0.0.0"
	Commit  = ""
)

// options holds the state shared by the root command and its subcommands.
type options struct {
	configFile  string
	logLevel    string
	printConfig bool

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, shared.ErrBasementNeverReached):
		fmt.Fprintln(stdout, shared.NeverReachedMessage)
		return 1
	default:
		fmt.Fprintln(stderr, "day1:", err)
		return 2
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:   "day1",
		Short: "Solve Advent of Code 2015 day 1",
		Long: `day1 follows a sequence of up and down symbols read from a single input file.
The floor subcommand prints the final floor, the basement subcommand prints the
position of the first symbol that enters the basement.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to configuration file")
	flags.String("input", defaults.InputPath, "Path to the puzzle input")
	flags.String("capacity", defaults.Capacity, "Maximum number of bytes read from the input, e.g. 8K")
	flags.String("up", defaults.Up, "Symbol for one floor up")
	flags.String("down", defaults.Down, "Symbol for one floor down")
	flags.Bool("mmap", defaults.Mmap, "Read the input through a memory mapping")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the effective config and exit")

	root.AddCommand(newFloorCmd(opts))
	root.AddCommand(newBasementCmd(opts))
	return root
}

func version() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}

func (o *options) setup(cmd *cobra.Command) error {
	level, err := zapcore.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid `log-level`: %w", err)
	}
	o.logger = newLogger(cmd.ErrOrStderr(), level)

	cfg, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger.Debug("config loaded", zap.String("config", o.configFile), zap.String("input", cfg.InputPath))
	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func (o *options) read() ([]byte, error) {
	capacity, err := o.cfg.CapacityBytes()
	if err != nil {
		return nil, err
	}
	src := input.Source{
		Path:     o.cfg.InputPath,
		Capacity: capacity,
		Mmap:     o.cfg.Mmap,
		Logger:   o.logger.Named("input"),
	}
	return src.Read()
}
