package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/calculator/internal/render"
)

func newDiscoverCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "discover <intent>",
		Short: "Find tools matching a free-text intent",
		Long: `Ranks tools by how well their ID, name and description match the intent.

Example:
  calculator discover "compound interest"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			intent := strings.Join(args, " ")
			tools := a.registry.DiscoverTools(intent, limit)
			if len(tools) == 0 {
				return fmt.Errorf("no tools match %q", intent)
			}
			return render.Tools(cmd.OutOrStdout(), a.cfg.Output.Format, tools)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum number of tools")
	return cmd
}
