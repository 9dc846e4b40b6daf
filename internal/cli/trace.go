package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgrid/pkg/dict"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/render/pathviz"
	"github.com/matzehuels/wordgrid/pkg/search"
)

// traceCommand creates the trace command.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		board  boardFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "trace <word>",
		Short: "Find the path spelling a word and draw it",
		Long: `Find the first path that spells a word on the board and draw it.

The board is printed with the path highlighted. With -o the path is also
written as a Graphviz graph: .dot writes the source, .svg renders it.`,
		Example: `  wordgrid trace knife
  wordgrid trace plonk -o plonk.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			word := args[0]
			if err := apperr.ValidateWord(word); err != nil {
				return err
			}

			opts := board.options(cmd, c.Config.SolveOptions())
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			b, err := opts.Board()
			if err != nil {
				return err
			}

			matches := search.TraceAll(b, dict.Exact(word))
			if len(matches) == 0 {
				return apperr.New(apperr.ErrCodeNotFound, "%q cannot be traced on this board", word)
			}
			p := matches[0].Path
			logger.Debug("traced", "word", word, "path", p.String(), "paths", len(matches))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderBoard(b, p))
			printInfo(out, "%s %s %s", StyleValue.Render(word), StyleDim.Render(iconArrow), p)
			if len(matches) > 1 {
				printDetail(out, "%d more paths spell it", len(matches)-1)
			}

			if output == "" {
				return nil
			}
			var data []byte
			switch strings.ToLower(filepath.Ext(output)) {
			case ".dot":
				data = []byte(pathviz.ToDOT(b, p))
			case ".svg":
				if data, err = pathviz.RenderSVG(ctx, b, p); err != nil {
					return err
				}
			default:
				return apperr.New(apperr.ErrCodeUnsupported, "unsupported output format %q (use .dot or .svg)", filepath.Ext(output))
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(out, output)
			return nil
		},
	}

	board.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the path as .dot or .svg")

	return cmd
}
