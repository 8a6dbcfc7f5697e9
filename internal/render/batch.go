package render

import (
	"fmt"
	"io"

	"github.com/GriffinCanCode/calculator/internal/batch"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/config"
)

// Batch prints a batch report.
func Batch(w io.Writer, format string, report *batch.Report) error {
	if format != config.FormatText {
		return Encode(w, format, report)
	}

	out := &stickyWriter{w: w}
	if report.Name != "" {
		out.line("=== %s ===", report.Name)
	}
	for _, step := range report.Steps {
		label := fmt.Sprintf("%d", step.Index)
		if step.ID != "" {
			label += " " + step.ID
		}
		switch {
		case step.Result != nil:
			out.line("[%s] %s", label, resultLine(step.Tool, step.Result))
		default:
			out.line("[%s] %s: error %s", label, step.Tool, step.Error)
		}
	}
	out.line("%d succeeded, %d failed", report.Succeeded, report.Failed)
	return out.err
}
