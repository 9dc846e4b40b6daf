package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/grid"
)

// neighborsCommand creates the neighbors command.
func (c *CLI) neighborsCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "neighbors <cell>",
		Short: "Show the cells adjacent to a cell",
		Long: `Show the cells adjacent to a cell, in the order the search visits them:
up, up-left, left, down-left, down, down-right, right, up-right.`,
		Example: `  wordgrid neighbors 5
  wordgrid neighbors 0 --width 5 --height 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := strconv.Atoi(args[0])
			if err != nil {
				return apperr.New(apperr.ErrCodeInvalidCell, "cell must be an integer, got %q", args[0])
			}
			t := grid.Topology{Width: width, Height: height}
			if err := t.Validate(); err != nil {
				return err
			}
			if err := t.ValidateCell(cell); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(t.Neighbors(cell)))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", grid.StandardWidth, "board width")
	cmd.Flags().IntVar(&height, "height", grid.StandardHeight, "board height")

	return cmd
}
