package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/calculator/internal/calculator"
	"github.com/GriffinCanCode/calculator/internal/render"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the walkthrough of every operation group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	return render.Demo(cmd.OutOrStdout(), calculator.New())
}
