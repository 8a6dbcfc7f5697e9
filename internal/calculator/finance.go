package calculator

import gomath "math"

// Percentage returns value as a percentage of total
func (Calculator) Percentage(value, total float64) (float64, error) {
	if total == 0 {
		return 0, divisionByZero("Percentage", "Total cannot be zero")
	}
	return (value / total) * 100, nil
}

// CalculateCompoundInterest returns the final amount
// principal * (1 + rate/n)^(n*years), where n is timesCompounded per year.
func (Calculator) CalculateCompoundInterest(principal, rate float64, timesCompounded int, years float64) (float64, error) {
	if principal <= 0 || rate < 0 || timesCompounded <= 0 || years < 0 {
		return 0, invalidArgument("CalculateCompoundInterest", "Invalid parameters for compound interest calculation")
	}

	n := float64(timesCompounded)
	return principal * gomath.Pow(1+rate/n, n*years), nil
}
