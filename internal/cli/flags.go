package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/solve"
)

// boardFlags are the board and dictionary flags shared by solve and trace.
type boardFlags struct {
	letters string
	rows    []string
	width   int
	height  int
	dict    string
	builtin string
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.letters, "letters", "l", "", "board letters, row by row")
	cmd.Flags().StringSliceVar(&f.rows, "rows", nil, "board rows, comma-separated (replaces --letters)")
	cmd.Flags().IntVar(&f.width, "width", 0, "board width (default 4)")
	cmd.Flags().IntVar(&f.height, "height", 0, "board height (default 4)")
	cmd.Flags().StringVarP(&f.dict, "dict", "d", "", "word list file, one word per line")
	cmd.Flags().StringVar(&f.builtin, "builtin", "", "builtin dictionary: common, all or exact:<word>")
}

// options starts from the configured options and applies the flags the user
// set explicitly.
func (f *boardFlags) options(cmd *cobra.Command, base solve.Options) solve.Options {
	opts := base
	changed := cmd.Flags().Changed

	if changed("rows") {
		opts.Rows = f.rows
		opts.Letters = ""
	}
	if changed("letters") {
		opts.Letters = f.letters
		opts.Rows = nil
		// A new letter string without dimensions is laid out on a square.
		if !changed("width") && !changed("height") {
			opts.Width, opts.Height = squareSide(len([]rune(f.letters)))
		}
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("dict") {
		opts.DictionaryPath = f.dict
		opts.Words = nil
	}
	if changed("builtin") {
		opts.Builtin = f.builtin
		opts.DictionaryPath = ""
		opts.Words = nil
	}
	return opts
}

// squareSide returns n×n dimensions when the letter count is a perfect
// square, and the standard size otherwise so validation reports the mismatch.
func squareSide(letters int) (int, int) {
	for n := 1; n*n <= letters; n++ {
		if n*n == letters {
			return n, n
		}
	}
	return grid.StandardWidth, grid.StandardHeight
}

// parseStart parses a --start value such as "0,1,2" or "0-1-2".
func parseStart(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	return grid.ParsePath(s)
}
