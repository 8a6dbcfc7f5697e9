package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	calc := New()

	result, err := calc.Average([]float64{10, 20, 30, 40, 50})
	require.NoError(t, err)
	assert.Equal(t, 30.0, result)

	t.Run("Empty and nil", func(t *testing.T) {
		_, err := calc.Average([]float64{})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = calc.Average(nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "Cannot calculate average of empty array", err.Error())
	})
}

func TestMedian(t *testing.T) {
	calc := New()

	tests := []struct {
		name    string
		numbers []float64
		want    float64
	}{
		{"odd", []float64{1, 2, 3, 4, 5}, 3},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{7}, 7},
		{"unsorted", []float64{9, 1, 5, 3}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Median(tt.numbers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Does not mutate input", func(t *testing.T) {
		input := []float64{5, 3, 9, 1}
		_, err := calc.Median(input)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 3, 9, 1}, input)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := calc.Median(nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestMaxMin(t *testing.T) {
	calc := New()
	numbers := []float64{10, -20, 30.5, 4}

	max, err := calc.Max(numbers)
	require.NoError(t, err)
	assert.Equal(t, 30.5, max)

	min, err := calc.Min(numbers)
	require.NoError(t, err)
	assert.Equal(t, -20.0, min)

	_, err = calc.Max(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "Cannot find max of empty array", err.Error())

	_, err = calc.Min([]float64{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "Cannot find min of empty array", err.Error())
}

func TestDispersion(t *testing.T) {
	calc := New()
	numbers := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	sum, err := calc.Sum(numbers)
	require.NoError(t, err)
	assert.Equal(t, 40.0, sum)

	rng, err := calc.Range(numbers)
	require.NoError(t, err)
	assert.Equal(t, 7.0, rng)

	variance, err := calc.Variance(numbers)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, variance, 1e-12)

	stdev, err := calc.StandardDeviation(numbers)
	require.NoError(t, err)
	assert.InDelta(t, 2.138089935, stdev, 1e-9)

	_, err = calc.Variance([]float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = calc.StandardDeviation(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = calc.Sum(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = calc.Range(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
