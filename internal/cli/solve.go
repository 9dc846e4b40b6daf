package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgrid/internal/server"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/search"
	"github.com/matzehuels/wordgrid/pkg/solve"
)

// solveFlags holds the flags of the solve command.
type solveFlags struct {
	board       boardFlags
	start       string
	unique      bool
	paths       bool
	jsonOut     bool
	interactive bool
	noCache     bool
	refresh     bool
}

// solveOutput is the --json document.
type solveOutput struct {
	Words   []string       `json:"words"`
	Count   int            `json:"count"`
	Cached  bool           `json:"cached"`
	Stats   search.Stats   `json:"stats"`
	Matches []search.Match `json:"matches,omitempty"`
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "List the words that can be traced on a board",
		Long: `List every dictionary word spelled by a path of adjacent cells, each
cell used at most once. Without flags the board and dictionary come from the
config file, or the 4x4 reference board and the common dictionary.

Words are printed in search order and a word reachable along two paths is
listed twice; --unique keeps the first occurrence only.`,
		Example: `  wordgrid solve
  wordgrid solve --letters abcdefghi --builtin all
  wordgrid solve --rows kno,iop --dict words.txt --paths
  wordgrid solve --start 0,1,2,3,4 --builtin exact:abcdef`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, f)
		},
	}

	f.board.register(cmd)
	cmd.Flags().StringVar(&f.start, "start", "", "only extend this path, e.g. 0,1,2")
	cmd.Flags().BoolVarP(&f.unique, "unique", "u", false, "list each word once")
	cmd.Flags().BoolVar(&f.paths, "paths", false, "show the path that spelled each word")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "browse the results interactively")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results and search again")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, f *solveFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts := f.board.options(cmd, c.Config.SolveOptions())
	start, err := parseStart(f.start)
	if err != nil {
		return err
	}
	opts.Start = start
	opts.Unique = f.unique
	opts.Refresh = f.refresh
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if b, err := opts.Board(); err == nil && acceptsAll(opts) && b.Cells() > server.MaxAcceptAllCells {
		printWarning(cmd.ErrOrStderr(), "listing every path on %d cells can take a very long time", b.Cells())
	}

	runner := c.newRunner(ctx, f.noCache)
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Searching...")
	if !f.jsonOut && !f.interactive {
		spin.Start()
	}
	res, err := runner.Solve(ctx, opts)
	if !f.jsonOut && !f.interactive {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Searched %d×%d board", res.Board.Topology().Width, res.Board.Topology().Height))
	matches := presented(res)

	out := cmd.OutOrStdout()
	switch {
	case f.jsonOut:
		return writeSolveJSON(out, res, matches, f.paths)
	case f.interactive:
		return runBrowser(ctx, res.Board, matches)
	}

	var paths []grid.Path
	if f.paths {
		paths = make([]grid.Path, len(matches))
		for i, m := range matches {
			paths[i] = m.Path
		}
	}
	printWords(out, res.Words, paths)
	printStats(out, res.Stats.Visited, res.Stats.Pruned, res.CacheHit)
	return nil
}

// acceptsAll reports whether opts select the dictionary that accepts every
// string.
func acceptsAll(opts solve.Options) bool {
	return len(opts.Words) == 0 && opts.DictionaryPath == "" && opts.Builtin == solve.BuiltinAll
}

// presented returns the matches backing res.Words: all of them, or the first
// match of each word when the words were deduplicated.
func presented(res *solve.Result) []search.Match {
	if len(res.Words) == len(res.Matches) {
		return res.Matches
	}
	seen := make(map[string]bool, len(res.Words))
	out := make([]search.Match, 0, len(res.Words))
	for _, m := range res.Matches {
		if seen[m.Word] {
			continue
		}
		seen[m.Word] = true
		out = append(out, m)
	}
	return out
}

func writeSolveJSON(w io.Writer, res *solve.Result, matches []search.Match, withPaths bool) error {
	doc := solveOutput{
		Words:  res.Words,
		Count:  len(res.Words),
		Cached: res.CacheHit,
		Stats:  res.Stats,
	}
	if doc.Words == nil {
		doc.Words = []string{}
	}
	if withPaths {
		doc.Matches = matches
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
