// Package cli implements the urbancharge command-line interface.
//
// The commands load a community from a configuration file, place charging
// points with one of the solver strategies, check and display the result,
// render it as an image, and convert between the text and JSON formats. The
// interactive command offers the same operations as a menu-driven console.
//
// # Commands
//
//   - solve: Run a strategy and optionally save the result
//   - show: Print the cities, their charging points, and the score
//   - check: Fail when a city has no charging point within reach
//   - render: Draw the community as SVG, PNG, or DOT
//   - convert: Convert between the text and JSON formats
//   - interactive: Build and edit a community from menus
//   - cache: Manage the render cache
//
// # Settings
//
// Defaults come from $XDG_CONFIG_HOME/urbancharge/config.toml (or --config);
// flags given on the command line override them.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/urbancharge/urbancharge/internal/config"
	"github.com/urbancharge/urbancharge/pkg/buildinfo"
	"github.com/urbancharge/urbancharge/pkg/cache"
	"github.com/urbancharge/urbancharge/pkg/render/nodelink"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "urbancharge"

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

	// Settings is filled from the settings file before any command runs.
	Settings config.Settings

	settingsPath string
	verbose      bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Settings: config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Urbancharge places EV charging points across a road network",
		Long:              `Urbancharge finds a small set of cities to equip with electric-vehicle charging points so that every city either has one or is a single road away from one.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.settingsPath, "config", "", "settings file (default $XDG_CONFIG_HOME/urbancharge/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Renderer Factory
// =============================================================================

// newRenderer creates a cached renderer for CLI use.
func (c *CLI) newRenderer(noCache bool) *nodelink.Renderer {
	cc, err := newCache(noCache || c.Settings.NoCache)
	if err != nil {
		c.Logger.Debug("render cache unavailable", "err", err)
		cc = cache.NewNullCache()
	}
	return nodelink.NewRenderer(cc)
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/urbancharge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
