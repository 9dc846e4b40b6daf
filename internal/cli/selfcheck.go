package cli

import (
	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/selfcheck"
)

// selfcheckCommand creates the selfcheck command.
func (c *CLI) selfcheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify the search against known answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failures := selfcheck.Run()
			for _, f := range failures {
				printError(out, "%s", f)
			}
			if len(failures) > 0 {
				return apperr.New(apperr.ErrCodeInternal, "%d of %d checks failed", len(failures), len(selfcheck.Checks()))
			}
			printSuccess(out, "All %d checks passed", len(selfcheck.Checks()))
			return nil
		},
	}
}
