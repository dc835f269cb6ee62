package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/io"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a community between the text and JSON formats",
		Long: `Convert reads a community and writes it in the format named by the output
extension: .json for JSON, anything else for the ville/route/recharge format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidatePath(output); err != nil {
				return err
			}
			uc, err := c.loadCommunity(args[0])
			if err != nil {
				return err
			}
			if err := io.SaveFile(uc, output); err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			printSuccess("Converted %s to %s", args[0], io.FormatOf(output))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json for JSON)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
