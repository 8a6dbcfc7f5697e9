// Package calculator provides the numeric operations library.
//
// Operations are grouped by domain:
//   - arithmetic: Add, Subtract, Multiply, Divide, IsEven
//   - powers: Factorial, Power, SquareRoot
//   - number theory: GreatestCommonDivisor, LeastCommonMultiple, IsPrime, FibonacciSequence
//   - statistics: Average, Median, Max, Min, Sum, Range, Variance, StandardDeviation
//   - finance: Percentage, CalculateCompoundInterest
//   - conversions: Celsius/Fahrenheit, Miles/Kilometers
//
// Every operation is pure and synchronous. Integer operations use Go's
// fixed-width int and wrap silently on overflow. Failures are reported as
// *Error values carrying one of two kinds:
//
//	ErrInvalidArgument  - the input violates the operation's domain
//	ErrDivisionByZero   - a caller-supplied denominator is exactly zero
//
// Example Usage:
//
//	calc := calculator.New()
//	q, err := calc.Divide(10, 0)
//	if errors.Is(err, calculator.ErrDivisionByZero) {
//		// handle
//	}
package calculator
