package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urbancharge/urbancharge/internal/config"
	"github.com/urbancharge/urbancharge/pkg/community"
	"github.com/urbancharge/urbancharge/pkg/io"
)

// setup loads the settings file, applies --verbose, and attaches the logger
// to the command context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(c.settingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	c.Settings = settings

	level := LogInfo
	if c.verbose || settings.Verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// loadCommunity reads a community file in the format its extension names.
func (c *CLI) loadCommunity(path string) (*community.UrbanCommunity, error) {
	prog := newProgress(c.Logger)
	uc, err := io.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded", "file", path, "cities", uc.Len(), "roads", len(uc.Roads()), "score", uc.Score())
	prog.debug("Loaded " + path)
	return uc, nil
}

// stringSetting returns the flag value when it was given, and fallback otherwise.
func stringSetting(cmd *cobra.Command, name, flag, fallback string) string {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}

func intSetting(cmd *cobra.Command, name string, flag, fallback int) int {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}
