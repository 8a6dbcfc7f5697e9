package math

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/calculator/internal/calculator"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// MathOps is embedded by every module and carries the calculator
type MathOps struct {
	Calc calculator.Calculator
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result with an error code
func Failure(code, message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, Code: code}, nil
}

// FromError converts a calculator error into a failed result
func FromError(err error) (*types.Result, error) {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return Failure(types.CodeDivisionByZero, err.Error())
	case errors.Is(err, calculator.ErrInvalidArgument):
		return Failure(types.CodeInvalidArgument, err.Error())
	default:
		return nil, err
	}
}

func invalidParams(format string, args ...interface{}) (*types.Result, error) {
	return Failure(types.CodeInvalidParams, fmt.Sprintf(format, args...))
}

// GetNumber extracts float64 from params. JSON, YAML and TOML decoders
// produce different numeric types, all accepted here.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetInt extracts an integral number that fits in int
func GetInt(params map[string]interface{}, key string) (int, error) {
	val, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s parameter required", key)
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		if v < gomath.MinInt || v > gomath.MaxInt {
			return 0, fmt.Errorf("%s out of integer range", key)
		}
		return int(v), nil
	case uint64:
		if v > gomath.MaxInt {
			return 0, fmt.Errorf("%s out of integer range", key)
		}
		return int(v), nil
	}

	f, ok := toFloat(val)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	if f != gomath.Trunc(f) || gomath.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if f < gomath.MinInt || f >= gomath.MaxInt {
		return 0, fmt.Errorf("%s out of integer range", key)
	}
	return int(f), nil
}

// GetNumbers extracts an array of numbers. A missing or null key yields a
// nil slice with no error; the calculator rejects it.
func GetNumbers(params map[string]interface{}, key string) ([]float64, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return nil, nil
	}

	switch arr := val.(type) {
	case []float64:
		return arr, nil
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for i, v := range arr {
			n, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a number", key, i)
			}
			numbers = append(numbers, n)
		}
		return numbers, nil
	default:
		return nil, fmt.Errorf("%s must be an array of numbers", key)
	}
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// requireNumbers reads each named float parameter in order
func requireNumbers(params map[string]interface{}, keys ...string) ([]float64, error) {
	values := make([]float64, len(keys))
	for i, key := range keys {
		v, ok := GetNumber(params, key)
		if !ok {
			return nil, fmt.Errorf("%s parameter required", key)
		}
		values[i] = v
	}
	return values, nil
}

// requireInts reads each named integer parameter in order
func requireInts(params map[string]interface{}, keys ...string) ([]int, error) {
	values := make([]int, len(keys))
	for i, key := range keys {
		v, err := GetInt(params, key)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
