package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlScript = `name: basics
steps:
  - id: sum
    tool: math.add
    params: {a: 5, b: 3}
  - tool: math.mean
    params:
      numbers: [10, 20, 30, 40, 50]
`

const tomlScript = `name = "basics"

[[steps]]
id = "sum"
tool = "math.add"
params = { a = 5, b = 3 }

[[steps]]
tool = "math.mean"
params = { numbers = [10, 20, 30, 40, 50] }
`

const jsonScript = `{
  "name": "basics",
  "steps": [
    {"id": "sum", "tool": "math.add", "params": {"a": 5, "b": 3}},
    {"tool": "math.mean", "params": {"numbers": [10, 20, 30, 40, 50]}}
  ]
}`

func TestParse(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{FormatYAML, yamlScript},
		{FormatTOML, tomlScript},
		{FormatJSON, jsonScript},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			script, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "basics", script.Name)
			require.Len(t, script.Steps, 2)
			assert.Equal(t, "sum", script.Steps[0].ID)
			assert.Equal(t, "math.add", script.Steps[0].Tool)
			assert.Contains(t, script.Steps[0].Params, "a")
			assert.Equal(t, "math.mean", script.Steps[1].Tool)
			assert.Len(t, script.Steps[1].Params["numbers"], 5)
		})
	}
}

func TestParseJSONIntegersStayExact(t *testing.T) {
	script, err := Parse([]byte(`{"steps": [{"tool": "math.isPrime", "params": {"n": 9223372036854775783}}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775783), script.Steps[0].Params["n"])
}

func TestParseErrors(t *testing.T) {
	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := Parse([]byte(jsonScript), "xml")
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte(`{"steps": [`), FormatJSON)
		assert.ErrorContains(t, err, "JSON parse error")
	})

	t.Run("NoSteps", func(t *testing.T) {
		_, err := Parse([]byte(`name: empty`), FormatYAML)
		assert.EqualError(t, err, "script has no steps")
	})

	t.Run("MissingTool", func(t *testing.T) {
		_, err := Parse([]byte(`{"steps": [{"tool": "math.add"}, {"id": "x"}]}`), FormatJSON)
		assert.EqualError(t, err, "step 2: tool is required")
	})

	t.Run("BadToolID", func(t *testing.T) {
		_, err := Parse([]byte(`{"steps": [{"tool": "sqrt"}]}`), FormatJSON)
		assert.ErrorContains(t, err, "step 1: tool \"sqrt\" must have the form service.tool")
	})

	t.Run("BadStepID", func(t *testing.T) {
		_, err := Parse([]byte(`{"steps": [{"id": "a b", "tool": "math.add"}]}`), FormatJSON)
		assert.ErrorContains(t, err, "step 1: id")
	})
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]string{
		"run.yaml":      FormatYAML,
		"run.YML":       FormatYAML,
		"dir/run.toml":  FormatTOML,
		"/tmp/run.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("run.txt")
	assert.ErrorContains(t, err, "unsupported script extension")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basics.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlScript), 0o644))

	script, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, format)
	assert.Len(t, script.Steps, 2)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read script")
}
