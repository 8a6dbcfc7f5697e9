package math

import (
	"context"

	"github.com/GriffinCanCode/calculator/internal/types"
)

// FinanceOps handles percentages and compound interest
type FinanceOps struct {
	*MathOps
}

// GetTools returns finance tool definitions
func (f *FinanceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.percentage",
			Name:        "Percentage",
			Description: "Express value as a percentage of total",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Part", Required: true},
				{Name: "total", Type: "number", Description: "Whole (non-zero)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.compoundInterest",
			Name:        "Compound Interest",
			Description: "Final amount of principal compounded n times per year",
			Parameters: []types.Parameter{
				{Name: "principal", Type: "number", Description: "Initial amount (> 0)", Required: true},
				{Name: "rate", Type: "number", Description: "Annual rate as a fraction, e.g. 0.05", Required: true},
				{Name: "times_compounded", Type: "integer", Description: "Compounding periods per year (> 0)", Required: true},
				{Name: "years", Type: "number", Description: "Duration in years (>= 0)", Required: true},
			},
			Returns: "number",
		},
	}
}

// Percentage calculates (value/total)*100
func (f *FinanceOps) Percentage(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireNumbers(params, "value", "total")
	if err != nil {
		return invalidParams("%v", err)
	}

	pct, err := f.Calc.Percentage(vals[0], vals[1])
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": pct})
}

// CompoundInterest calculates the compounded amount
func (f *FinanceOps) CompoundInterest(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireNumbers(params, "principal", "rate", "years")
	if err != nil {
		return invalidParams("%v", err)
	}
	times, err := GetInt(params, "times_compounded")
	if err != nil {
		return invalidParams("%v", err)
	}

	amount, err := f.Calc.CalculateCompoundInterest(vals[0], vals[1], times, vals[2])
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": amount, "interest": amount - vals[0]})
}
