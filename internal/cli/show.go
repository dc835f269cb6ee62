package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the cities of a community and their charging points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.loadCommunity(args[0])
			if err != nil {
				return err
			}
			if plain {
				fmt.Print(uc.DisplayText())
				return nil
			}
			printCommunity(uc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one line per city without styling")
	return cmd
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Verify that every city can reach a charging point",
		Long: `Check exits with an error when a city has neither a charging point nor a
road to a city with one, and lists those cities.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.loadCommunity(args[0])
			if err != nil {
				return err
			}

			stranded := uc.Undominated()
			if len(stranded) == 0 {
				printSuccess("Every city has access to a charging point")
				printDetail("%d of %d cities have a charging point", uc.Score(), uc.Len())
				return nil
			}

			printError("%d of %d cities have no access to a charging point", len(stranded), uc.Len())
			for _, name := range stranded {
				printDetail("%s", name)
			}
			return errs.New(errs.ErrCodeAccessibilityViolation, "no access: %s", strings.Join(stranded, ", "))
		},
	}
}
