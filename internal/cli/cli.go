// Package cli implements the wordgrid command-line interface.
//
// # Commands
//
// The main commands are:
//   - solve: list the words on a board
//   - neighbors: show the cells adjacent to a cell
//   - trace: find the path spelling a word and draw it
//   - selfcheck: verify the build against known answers
//   - serve: run the HTTP API
//   - cache: manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults come from the TOML file named by --config, or from
// $XDG_CONFIG_HOME/wordgrid/config.toml. Flags override the file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordgrid/pkg/cache"
	"github.com/matzehuels/wordgrid/pkg/config"
	"github.com/matzehuels/wordgrid/pkg/solve"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a solve runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *solve.Runner {
	r := solve.NewRunner(c.openCache(ctx, noCache), nil, c.Logger)
	r.TTL = c.Config.Cache.TTL
	return r
}

// openCache opens the configured backend. A backend that cannot be reached
// disables caching rather than failing the command.
func (c *CLI) openCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory", "error", err)
		return cache.NewNullCache()
	}
	cc, err := cache.Open(ctx, c.Config.CacheOptions(dir))
	if err != nil {
		c.Logger.Warn("cache disabled", "backend", c.Config.Cache.Backend, "error", err)
		return cache.NewNullCache()
	}
	return cc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/wordgrid/).
func cacheDir() (string, error) {
	return config.CacheDir()
}
