package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/calculator/internal/batch"
	"github.com/GriffinCanCode/calculator/internal/render"
	"github.com/GriffinCanCode/calculator/internal/shared/id"
	"github.com/GriffinCanCode/calculator/internal/shared/utils"
	"github.com/GriffinCanCode/calculator/internal/types"
)

func newExecCommand(a *app) *cobra.Command {
	var rawParams string

	cmd := &cobra.Command{
		Use:   "exec <tool-id>",
		Short: "Execute a single tool",
		Long: `Executes one tool with parameters given as a JSON object.

Examples:
  calculator exec math.add --params '{"a": 5, "b": 3}'
  calculator exec math.median --params '{"numbers": [3, 1, 2]}' -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{}
			if rawParams != "" {
				if err := utils.ValidateSize([]byte(rawParams), "--params", utils.MaxParamsSize); err != nil {
					return err
				}
				if err := batch.JSONConfig.UnmarshalFromString(rawParams, &params); err != nil {
					return fmt.Errorf("invalid --params: %w", err)
				}
			}
			return a.exec(cmd.Context(), cmd, args[0], params)
		},
	}

	cmd.Flags().StringVarP(&rawParams, "params", "p", "", "Tool parameters as a JSON object")
	return cmd
}

func (a *app) exec(ctx context.Context, cmd *cobra.Command, toolID string, params map[string]interface{}) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reqID := id.NewInvocationID().String()
	source := "cli"

	result, err := a.registry.Execute(ctx, toolID, params, &types.Context{RequestID: &reqID, Source: &source})
	if err != nil {
		return err
	}
	if err := render.Result(cmd.OutOrStdout(), a.cfg.Output.Format, toolID, result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s failed: %s", toolID, result.Code)
	}
	return nil
}
