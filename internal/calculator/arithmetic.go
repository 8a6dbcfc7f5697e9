package calculator

import gomath "math"

// Add returns a + b
func (Calculator) Add(a, b int) int {
	return a + b
}

// Subtract returns a - b
func (Calculator) Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b
func (Calculator) Multiply(a, b int) int {
	return a * b
}

// Divide divides a by b in floating point
func (Calculator) Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, divisionByZero("Divide", "Cannot divide by zero")
	}
	return float64(a) / float64(b), nil
}

// IsEven reports whether n is divisible by two
func (Calculator) IsEven(n int) bool {
	return n%2 == 0
}

// Factorial computes n! with an accumulator. Large n wraps.
func (Calculator) Factorial(n int) (int, error) {
	if n < 0 {
		return 0, invalidArgument("Factorial", "Factorial cannot be calculated for negative numbers")
	}
	if n == 0 || n == 1 {
		return 1, nil
	}

	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// Power raises base to exponent
func (Calculator) Power(base, exponent float64) float64 {
	return gomath.Pow(base, exponent)
}

// SquareRoot returns the non-negative square root of x
func (Calculator) SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, invalidArgument("SquareRoot", "Cannot calculate square root of negative number")
	}
	return gomath.Sqrt(x), nil
}
