package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/calculator/internal/shared/utils"
)

// Script formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Script is an ordered list of tool invocations
type Script struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Steps []Step `json:"steps" yaml:"steps" toml:"steps"`
}

// Step is one tool invocation
type Step struct {
	ID     string                 `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Tool   string                 `json:"tool" yaml:"tool" toml:"tool"`
	Params map[string]interface{} `json:"params" yaml:"params" toml:"params"`
}

// JSONConfig decodes JSON integers as int64 so values above 2^53 stay exact.
var JSONConfig = sonic.Config{UseInt64: true}.Froze()

// FormatFromPath picks a decoder by file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported script extension %q (want .yaml, .yml, .toml or .json)", filepath.Ext(path))
	}
}

// Load reads and parses a script file
func Load(path string) (*Script, string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read script: %w", err)
	}
	if err := utils.ValidateSize(data, "script", utils.MaxScriptSize); err != nil {
		return nil, "", err
	}

	script, err := Parse(data, format)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return script, format, nil
}

// Parse decodes and validates a script
func Parse(data []byte, format string) (*Script, error) {
	var script Script
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &script)
	case FormatTOML:
		err = toml.Unmarshal(data, &script)
	case FormatJSON:
		err = JSONConfig.Unmarshal(data, &script)
	default:
		return nil, fmt.Errorf("unsupported script format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s parse error: %w", strings.ToUpper(format), err)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks step IDs, tool IDs and parameter nesting
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}
	for i, step := range s.Steps {
		if err := utils.ValidateID(step.ID, "id", false); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := utils.ValidateToolID(step.Tool, "tool"); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := utils.ValidateDepth(step.Params, utils.MaxParamsDepth); err != nil {
			return fmt.Errorf("step %d params: %w", i+1, err)
		}
	}
	return nil
}
