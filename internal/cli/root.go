package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgrid/pkg/buildinfo"
	"github.com/matzehuels/wordgrid/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the configuration file is loaded and the log
// level is set from --verbose:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, plus solve and cache events
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wordgrid finds the words hidden in a letter grid",
		Long: `Wordgrid searches a grid of letters for dictionary words spelled along
paths of adjacent cells, where each cell is used at most once per word.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordgrid/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.selfcheckCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and prepares logging for the command.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	c.SetLogLevel(logLevel(c.verbose))
	if c.verbose {
		registerLogHooks(c.Logger)
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
