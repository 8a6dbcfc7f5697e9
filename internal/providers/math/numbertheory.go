package math

import (
	"context"

	"github.com/GriffinCanCode/calculator/internal/types"
)

// NumberTheoryOps handles divisibility, primality and sequences
type NumberTheoryOps struct {
	*MathOps
}

// GetTools returns number theory tool definitions
func (nt *NumberTheoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.gcd",
			Name:        "Greatest Common Divisor",
			Description: "Calculate GCD of two integers",
			Parameters:  intPair("integer"),
			Returns:     "integer",
		},
		{
			ID:          "math.lcm",
			Name:        "Least Common Multiple",
			Description: "Calculate LCM of two integers",
			Parameters:  intPair("integer"),
			Returns:     "integer",
		},
		{
			ID:          "math.isPrime",
			Name:        "Is Prime",
			Description: "Check whether an integer is prime",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Integer to test", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.fibonacci",
			Name:        "Fibonacci Sequence",
			Description: "Generate the first count Fibonacci numbers",
			Parameters: []types.Parameter{
				{Name: "count", Type: "integer", Description: "Number of terms (positive)", Required: true},
			},
			Returns: "array",
		},
	}
}

// GCD calculates greatest common divisor
func (nt *NumberTheoryOps) GCD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireInts(params, "a", "b")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": nt.Calc.GreatestCommonDivisor(vals[0], vals[1])})
}

// LCM calculates least common multiple
func (nt *NumberTheoryOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := requireInts(params, "a", "b")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": nt.Calc.LeastCommonMultiple(vals[0], vals[1])})
}

// IsPrime tests primality
func (nt *NumberTheoryOps) IsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := GetInt(params, "n")
	if err != nil {
		return invalidParams("%v", err)
	}
	return Success(map[string]interface{}{"result": nt.Calc.IsPrime(n)})
}

// Fibonacci generates the sequence
func (nt *NumberTheoryOps) Fibonacci(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	count, err := GetInt(params, "count")
	if err != nil {
		return invalidParams("%v", err)
	}

	sequence, err := nt.Calc.FibonacciSequence(count)
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"result": sequence, "count": len(sequence)})
}
