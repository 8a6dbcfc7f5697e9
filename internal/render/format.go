package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Number formats a float in its shortest round-trip form: 5, 2.5, 0.25.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fixed formats a float with the given number of decimals.
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Bool renders a boolean as True or False.
func Bool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Ints renders a sequence as [a, b, c].
func Ints(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Floats renders a sequence as [a, b, c].
func Floats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Number(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Value renders a result value of any supported shape.
func Value(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return Number(val)
	case int:
		return strconv.Itoa(val)
	case bool:
		return Bool(val)
	case []int:
		return Ints(val)
	case []float64:
		return Floats(val)
	case nil:
		return "null"
	default:
		return strings.TrimSpace(strings.ReplaceAll(fmt.Sprint(val), "\n", " "))
	}
}
