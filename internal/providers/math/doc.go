// Package math exposes the calculator library as a service provider.
//
// Modules:
//   - ArithmeticOps: add, subtract, multiply, divide, isEven, factorial, power, sqrt
//   - NumberTheoryOps: gcd, lcm, isPrime, fibonacci
//   - StatsOps: mean, median, max, min, sum, range, variance, stdev
//   - FinanceOps: percentage, compoundInterest
//   - ConversionsOps: celsius/fahrenheit, miles/kilometers
//
// Parameters arrive as loosely typed maps (decoded JSON, YAML or TOML).
// Integer parameters must be integral and fit in int. Library failures come
// back as unsuccessful Results whose Code is "invalid_argument" or
// "division_by_zero"; malformed parameters use "invalid_params".
//
// Example Usage:
//
//	p := math.NewProvider(math.WithLogger(logger))
//	result, err := p.Execute(ctx, "math.divide", map[string]interface{}{"a": 10, "b": 0}, nil)
//	// result.Success == false, result.Code == "division_by_zero"
package math
