package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/teacats/aoc2015/floor"
)

func newFloorCmd(opts *options) *cobra.Command {
	var explain bool

	floorCmd := &cobra.Command{
		Use:   "floor",
		Short: "Print the floor reached at the end of the input",
		Long: `Every symbol is first counted as up, then each full 8-byte word of the input
takes away two floors per down symbol it holds. Bytes after the last full word
are classified one by one, or stay counted as up with --word-aligned.`,
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
			countOpts := []floor.OptionFunc{
				floor.WithAlphabet(alphabet),
				floor.WithLogger(opts.logger.Named("floor")),
			}
			if opts.cfg.WordAligned {
				countOpts = append(countOpts, floor.WithWordAlignedParity())
			}

			result, err := floor.Count(data, countOpts...)
			if err != nil {
				return err
			}

			if explain {
				renderWords(cmd.ErrOrStderr(), floor.Words(data, alphabet))
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	floorCmd.Flags().Bool("word-aligned", false, "Count the bytes after the last full word as up")
	floorCmd.Flags().BoolVar(&explain, "explain", false, "Print the down count of every word to stderr")
	return floorCmd
}

func renderWords(w io.Writer, stats []floor.WordStat) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Word", "Bytes", "Downs"})
	for _, s := range stats {
		table.Append([]string{
			strconv.Itoa(s.Index),
			fmt.Sprintf("%#016x", s.Word),
			strconv.Itoa(s.Downs),
		})
	}
	table.Render()
}
