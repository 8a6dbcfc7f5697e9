package render

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/calculator/internal/infrastructure/config"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatJSON:
		data, err = sonic.MarshalIndent(v, "", "  ")
	case config.FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported encoding %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// Result prints a single tool result.
func Result(w io.Writer, format, toolID string, result *types.Result) error {
	if format != config.FormatText {
		return Encode(w, format, result)
	}
	_, err := io.WriteString(w, resultLine(toolID, result)+"\n")
	return err
}

func resultLine(toolID string, result *types.Result) string {
	if !result.Success {
		msg := ""
		if result.Error != nil {
			msg = *result.Error
		}
		return fmt.Sprintf("%s: error [%s] %s", toolID, result.Code, msg)
	}

	line := fmt.Sprintf("%s = %s", toolID, Value(result.Data["result"]))

	keys := make([]string, 0, len(result.Data))
	for k := range result.Data {
		if k != "result" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		line += fmt.Sprintf(" (%s: %s)", k, Value(result.Data[k]))
	}
	return line
}

// Tools prints tool definitions.
func Tools(w io.Writer, format string, tools []types.Tool) error {
	if format != config.FormatText {
		return Encode(w, format, tools)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tPARAMETERS\tRETURNS\tDESCRIPTION")
	for _, tool := range tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", tool.ID, paramList(tool.Parameters), tool.Returns, tool.Description)
	}
	return tw.Flush()
}

func paramList(params []types.Parameter) string {
	if len(params) == 0 {
		return "-"
	}
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += p.Name + ":" + p.Type
	}
	return out
}
