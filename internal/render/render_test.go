package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/calculator/internal/batch"
	"github.com/GriffinCanCode/calculator/internal/calculator"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/config"
	"github.com/GriffinCanCode/calculator/internal/types"
)

const demoOutput = `Enhanced Calculator Application
===============================
=== Basic Operations ===
5 + 3 = 8
10 - 4 = 6
6 * 7 = 42
15 / 3 = 5

=== Advanced Math ===
2^8 = 256
√25 = 5
5! = 120

=== Number Theory ===
GCD(48, 18) = 6
LCM(12, 8) = 24
Is 17 prime? True
Is 15 even? False

=== Fibonacci Sequence (first 8) ===
[0, 1, 1, 2, 3, 5, 8, 13]

=== Statistics ===
Numbers: [10, 20, 30, 40, 50]
Average: 30.00
Max: 50
Min: 10

=== Percentage ===
25 out of 100 = 25%

=== Error Handling ===
Error: Cannot divide by zero
Error: Cannot calculate square root of negative number

Application completed successfully!
`

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf, calculator.New()))
	assert.Equal(t, demoOutput, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestDemoWriteError(t *testing.T) {
	assert.ErrorIs(t, Demo(failingWriter{}, calculator.New()), assert.AnError)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "5", Value(5.0))
	assert.Equal(t, "2.5", Value(2.5))
	assert.Equal(t, "-3", Value(-3))
	assert.Equal(t, "True", Value(true))
	assert.Equal(t, "[0, 1, 1]", Value([]int{0, 1, 1}))
	assert.Equal(t, "[1.5, 2]", Value([]float64{1.5, 2}))
	assert.Equal(t, "null", Value(nil))
	assert.Equal(t, "map[interest:104.49]", Value(map[string]float64{"interest": 104.49}))
}

func TestResult(t *testing.T) {
	msg := "Cannot divide by zero"
	failed := &types.Result{Success: false, Error: &msg, Code: types.CodeDivisionByZero}
	ok := &types.Result{Success: true, Data: map[string]interface{}{"result": []int{0, 1}, "count": 2}}

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Result(&buf, config.FormatText, "math.fibonacci", ok))
		assert.Equal(t, "math.fibonacci = [0, 1] (count: 2)\n", buf.String())

		buf.Reset()
		require.NoError(t, Result(&buf, config.FormatText, "math.divide", failed))
		assert.Equal(t, "math.divide: error [division_by_zero] Cannot divide by zero\n", buf.String())
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Result(&buf, config.FormatJSON, "math.divide", failed))
		assert.JSONEq(t, `{"success":false,"error":"Cannot divide by zero","code":"division_by_zero"}`, buf.String())
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Result(&buf, config.FormatYAML, "math.divide", failed))
		assert.YAMLEq(t, "success: false\nerror: Cannot divide by zero\ncode: division_by_zero\n", buf.String())
	})

	t.Run("Unsupported", func(t *testing.T) {
		assert.Error(t, Encode(&bytes.Buffer{}, "xml", ok))
	})
}

func TestTools(t *testing.T) {
	tools := []types.Tool{{
		ID:          "math.sqrt",
		Description: "Calculate square root",
		Parameters:  []types.Parameter{{Name: "x", Type: "number"}},
		Returns:     "number",
	}}

	var buf bytes.Buffer
	require.NoError(t, Tools(&buf, config.FormatText, tools))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "TOOL"))
	assert.Contains(t, lines[1], "math.sqrt")
	assert.Contains(t, lines[1], "x:number")
}

func TestBatch(t *testing.T) {
	msg := "Count must be positive"
	report := &batch.Report{
		Name: "sample",
		Steps: []batch.Outcome{
			{Index: 1, ID: "sum", Tool: "math.add", Result: &types.Result{Success: true, Data: map[string]interface{}{"result": 8}}},
			{Index: 2, Tool: "math.fibonacci", Result: &types.Result{Error: &msg, Code: types.CodeInvalidArgument}},
			{Index: 3, Tool: "geo.distance", Error: "service not found: geo"},
		},
		Succeeded: 1,
		Failed:    2,
	}

	var buf bytes.Buffer
	require.NoError(t, Batch(&buf, config.FormatText, report))
	assert.Equal(t, `=== sample ===
[1 sum] math.add = 8
[2] math.fibonacci: error [invalid_argument] Count must be positive
[3] geo.distance: error service not found: geo
1 succeeded, 2 failed
`, buf.String())
}
