package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/teacats/aoc2015/basement"
	"github.com/teacats/aoc2015/shared"
)

func newBasementCmd(opts *options) *cobra.Command {
	var explain bool

	basementCmd := &cobra.Command{
		Use:   "basement",
		Short: "Print the position of the first symbol that enters the basement",
		Long: `Positions are 1-based. If the input never goes below floor 0 the command
prints "Basement never reached" and exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.printConfig {
				spew.Fdump(cmd.OutOrStdout(), opts.cfg)
				return nil
			}

			data, err := opts.read()
			if err != nil {
				return err
			}

			alphabet := opts.cfg.Alphabet()
			if explain {
				renderSteps(cmd.ErrOrStderr(), basement.Trace(data, alphabet))
			}

			position, err := basement.Find(data,
				basement.WithAlphabet(alphabet),
				basement.WithLogger(opts.logger.Named("basement")),
			)
			switch {
			case errors.Is(err, shared.ErrBasementNeverReached):
				return err
			case err != nil:
				return fmt.Errorf("basement search failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), position)
			return nil
		},
	}

	basementCmd.Flags().BoolVar(&explain, "explain", false, "Print the floor after every step to stderr")
	return basementCmd
}

func renderSteps(w io.Writer, steps []basement.Step) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Position", "Symbol", "Floor"})
	for _, s := range steps {
		table.Append([]string{
			strconv.Itoa(s.Position),
			string(s.Symbol),
			strconv.Itoa(s.Floor),
		})
	}
	table.Render()
}
