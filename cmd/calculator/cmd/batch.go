package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/calculator/internal/batch"
	"github.com/GriffinCanCode/calculator/internal/render"
)

func newBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Run a script of tool invocations",
		Long: `Runs every step of a YAML, TOML or JSON script in order. A failing
step is reported and the run continues.

Example script (steps.yaml):
  name: basics
  steps:
    - id: sum
      tool: math.add
      params: {a: 5, b: 3}
    - tool: math.sqrt
      params: {x: 25}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, format, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := batch.NewRunner(a.registry, a.logger, a.metrics)
			report, err := runner.Run(ctx, script, format)
			if report != nil {
				if rerr := render.Batch(cmd.OutOrStdout(), a.cfg.Output.Format, report); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d steps failed", report.Failed, len(report.Steps))
			}
			return nil
		},
	}
}
