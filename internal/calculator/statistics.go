package calculator

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Average returns the arithmetic mean. Nil and empty inputs are rejected.
func (Calculator) Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, invalidArgument("Average", "Cannot calculate average of empty array")
	}
	return stat.Mean(numbers, nil), nil
}

// Median sorts a copy of numbers and returns the middle value, or the mean
// of the two central values for an even count.
func (Calculator) Median(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, invalidArgument("Median", "Cannot calculate median of empty array")
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	count := len(sorted)
	if count%2 == 0 {
		return (sorted[count/2-1] + sorted[count/2]) / 2.0, nil
	}
	return sorted[count/2], nil
}

// Max returns the largest element
func (Calculator) Max(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, invalidArgument("Max", "Cannot find max of empty array")
	}
	return floats.Max(numbers), nil
}

// Min returns the smallest element
func (Calculator) Min(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, invalidArgument("Min", "Cannot find min of empty array")
	}
	return floats.Min(numbers), nil
}

// Sum adds all elements
func (Calculator) Sum(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, invalidArgument("Sum", "Cannot calculate sum of empty array")
	}
	return floats.Sum(numbers), nil
}

// Range returns max - min
func (Calculator) Range(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, invalidArgument("Range", "Cannot calculate range of empty array")
	}
	return floats.Max(numbers) - floats.Min(numbers), nil
}

// Variance returns the unbiased sample variance (n-1 denominator).
func (Calculator) Variance(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, invalidArgument("Variance", "Variance requires at least two values")
	}
	return stat.Variance(numbers, nil), nil
}

// StandardDeviation returns the sample standard deviation
func (Calculator) StandardDeviation(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, invalidArgument("StandardDeviation", "Standard deviation requires at least two values")
	}
	return stat.StdDev(numbers, nil), nil
}
