package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/calculator/internal/render"
)

func newToolsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List every available tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Tools(cmd.OutOrStdout(), a.cfg.Output.Format, a.registry.Tools())
		},
	}
}
