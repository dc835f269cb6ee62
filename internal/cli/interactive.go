package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/urbancharge/urbancharge/pkg/community"
	"github.com/urbancharge/urbancharge/pkg/render/nodelink"
)

// interactiveCommand creates the interactive command.
func (c *CLI) interactiveCommand() *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:     "interactive [file]",
		Aliases: []string{"i"},
		Short:   "Build and edit a community from menus",
		Long: `Interactive starts a menu-driven console. Without a file it asks for the
number of cities (named A, B, C, ...) and the roads between them, then puts a
charging point in every city. From the main menu you can add or remove
charging points by hand, run a search strategy, save the community, or show
it as a graph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var uc *community.UrbanCommunity
			if len(args) == 1 {
				loaded, err := c.loadCommunity(args[0])
				if err != nil {
					return err
				}
				uc = loaded
			}
			return c.runInteractive(cmd.Context(), uc, !noOpen)
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "write the graph image without opening it")
	return cmd
}

func (c *CLI) runInteractive(ctx context.Context, uc *community.UrbanCommunity, open bool) error {
	format, err := nodelink.ParseFormat(c.Settings.Format)
	if err != nil || format == nodelink.FormatDOT {
		format = nodelink.FormatSVG
	}

	opts := consoleOptions{
		iterations: c.Settings.Iterations,
		seed:       c.Settings.Seed,
		format:     format,
		scale:      c.Settings.Scale,
		renderPath: filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.%s", appName, os.Getpid(), format)),
		renderer:   c.newRenderer(false),
	}
	if open {
		opts.open = nodelink.Open
	}

	p := tea.NewProgram(newConsoleModel(ctx, uc, opts), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("console: %w", err)
	}

	if m, ok := final.(ConsoleModel); ok && m.uc != nil {
		c.Logger.Debug("session ended", "cities", m.uc.Len(), "score", m.uc.Score(), "runs", m.runs)
	}
	return nil
}
