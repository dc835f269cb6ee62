package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path
	format  string  // svg, png, or dot
	scale   float64 // PNG resolution multiplier
	open    bool    // open the result in the system viewer
	noCache bool    // bypass the render cache
}

// renderCommand creates the render command.
//
// Rendering is optional: when the renderer fails the command prints a
// warning and still succeeds.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a community as an SVG or PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = stringSetting(cmd, "format", opts.format, c.Settings.Format)
			if !cmd.Flags().Changed("scale") {
				opts.scale = c.Settings.Scale
			}
			format, err := nodelink.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = outputPath(args[0], format)
			}
			if err := errs.ValidatePath(opts.output); err != nil {
				return err
			}

			uc, err := c.loadCommunity(args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), uc, format, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the image in the default viewer")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render without the cache")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"svg", "png", "dot"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(ctx context.Context, uc *community.UrbanCommunity, format nodelink.Format, opts renderOpts) error {
	r := c.newRenderer(opts.noCache)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	err := renderToFile(ctx, r, uc, nodelink.Options{Format: format, Scale: opts.scale}, opts.output)
	if err != nil {
		if ctx.Err() != nil {
			spinner.Stop()
			return ctx.Err()
		}
		if errs.Is(err, errs.ErrCodeUnavailable) {
			spinner.StopWithWarning("Could not render the community: " + errs.UserMessage(err))
			return nil
		}
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess("Rendered " + string(format))
	printFile(opts.output)

	if opts.open {
		if err := nodelink.Open(opts.output); err != nil {
			printWarning("Could not open the image: %s", errs.UserMessage(err))
		}
	}
	return nil
}

// renderToFile renders uc and writes the image to path.
func renderToFile(ctx context.Context, r *nodelink.Renderer, uc *community.UrbanCommunity, opts nodelink.Options, path string) error {
	data, err := r.Render(ctx, uc.ToDOT(), opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// outputPath replaces the extension of input with the format's.
func outputPath(input string, format nodelink.Format) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + string(format)
}
