package math

import (
	"context"

	"github.com/GriffinCanCode/calculator/internal/types"
)

// ArithmeticOps handles integer arithmetic, powers and roots
type ArithmeticOps struct {
	*MathOps
}

func intPair(desc string) []types.Parameter {
	return []types.Parameter{
		{Name: "a", Type: "integer", Description: "First " + desc, Required: true},
		{Name: "b", Type: "integer", Description: "Second " + desc, Required: true},
	}
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "math.add", Name: "Add", Description: "Add two integers", Parameters: intPair("operand"), Returns: "integer"},
		{ID: "math.subtract", Name: "Subtract", Description: "Subtract b from a", Parameters: intPair("operand"), Returns: "integer"},
		{ID: "math.multiply", Name: "Multiply", Description: "Multiply two integers", Parameters: intPair("operand"), Returns: "integer"},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide a by b in floating point",
			Parameters: []types.Parameter{
				{Name: "a", Type: "integer", Description: "Dividend", Required: true},
				{Name: "b", Type: "integer", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.isEven",
			Name:        "Is Even",
			Description: "Check whether an integer is even",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Integer to test", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Calculate factorial (n!)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.sqrt",
			Name:        "Square Root",
			Description: "Calculate square root of a non-negative number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
	}
}

// Add adds a and b
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireInts(params, "a", "b")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": a.Calc.Add(vals[0], vals[1])})
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireInts(params, "a", "b")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": a.Calc.Subtract(vals[0], vals[1])})
}

// Multiply multiplies a and b
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireInts(params, "a", "b")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": a.Calc.Multiply(vals[0], vals[1])})
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireInts(params, "a", "b")
	if err != nil {
		return invalidParams("%v", err)
	}

	quotient, err := a.Calc.Divide(vals[0], vals[1])
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": quotient})
}

// IsEven checks parity
func (a *ArithmeticOps) IsEven(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := GetInt(params, "n")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": a.Calc.IsEven(n)})
}

// Factorial calculates n!
func (a *ArithmeticOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := GetInt(params, "n")
	if err != nil {
		return invalidParams("%v", err)
	}

	result, err := a.Calc.Factorial(n)
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireNumbers(params, "base", "exponent")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": a.Calc.Power(vals[0], vals[1])})
}

// Sqrt calculates square root
func (a *ArithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return invalidParams("x parameter required")
	}

	root, err := a.Calc.SquareRoot(x)
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": root})
}
