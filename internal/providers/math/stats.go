package math

import (
	"context"

	"github.com/GriffinCanCode/calculator/internal/types"
)

// StatsOps handles descriptive statistics over number arrays
type StatsOps struct {
	*MathOps
}

func numbersParam() []types.Parameter {
	return []types.Parameter{
		{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
	}
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "math.mean", Name: "Mean", Description: "Calculate arithmetic mean", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.median", Name: "Median", Description: "Calculate median value", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.max", Name: "Maximum", Description: "Find maximum value", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.min", Name: "Minimum", Description: "Find minimum value", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.sum", Name: "Sum", Description: "Calculate sum of all numbers", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.range", Name: "Range", Description: "Calculate range (max - min)", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.variance", Name: "Variance", Description: "Calculate sample variance", Parameters: numbersParam(), Returns: "number"},
		{ID: "math.stdev", Name: "Standard Deviation", Description: "Calculate sample standard deviation", Parameters: numbersParam(), Returns: "number"},
	}
}

type reducer func([]float64) (float64, error)

// reduce decodes "numbers" and applies fn. Absent arrays reach fn as nil.
func (s *StatsOps) reduce(params map[string]interface{}, fn reducer) (*types.Result, error) {
	numbers, err := GetNumbers(params, "numbers")
	if err != nil {
		return invalidParams("%v", err)
	}

	value, err := fn(numbers)
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": value, "count": len(numbers)})
}

// Mean calculates arithmetic mean
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Average)
}

// Median calculates median
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Median)
}

// Max finds maximum value
func (s *StatsOps) Max(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Max)
}

// Min finds minimum value
func (s *StatsOps) Min(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Min)
}

// Sum adds all numbers
func (s *StatsOps) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Sum)
}

// Range calculates max - min
func (s *StatsOps) Range(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Range)
}

// Variance calculates sample variance
func (s *StatsOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.Variance)
}

// Stdev calculates sample standard deviation
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.reduce(params, s.Calc.StandardDeviation)
}
