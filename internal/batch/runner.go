package batch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/calculator/internal/infrastructure/logging"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calculator/internal/shared/id"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Executor runs a single tool. *service.Registry satisfies it.
type Executor interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Outcome is the result of one step
type Outcome struct {
	Index  int           `json:"index" yaml:"index"`
	ID     string        `json:"id,omitempty" yaml:"id,omitempty"`
	Tool   string        `json:"tool" yaml:"tool"`
	Result *types.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Succeeded reports whether the step produced a successful result
func (o Outcome) Succeeded() bool {
	return o.Error == "" && o.Result != nil && o.Result.Success
}

// Report summarizes a run
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Steps     []Outcome     `json:"steps" yaml:"steps"`
	Succeeded int           `json:"succeeded" yaml:"succeeded"`
	Failed    int           `json:"failed" yaml:"failed"`
	Elapsed   time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Runner executes scripts step by step
type Runner struct {
	exec    Executor
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewRunner creates a runner. logger and metrics may be nil.
func NewRunner(exec Executor, logger *logging.Logger, metrics *monitoring.Metrics) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{exec: exec, logger: logger.Named("batch"), metrics: metrics}
}

// Run executes every step in order. A failing step is recorded and the run
// continues; only context cancellation stops it early.
func (r *Runner) Run(ctx context.Context, script *Script, format string) (*Report, error) {
	runID := id.NewRunID().String()
	source := "batch"
	start := time.Now()

	report := &Report{RunID: runID, Name: script.Name, Steps: make([]Outcome, 0, len(script.Steps))}
	r.logger.Info("Batch started", zap.String("run_id", runID), zap.Int("steps", len(script.Steps)))

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}

		reqID := id.NewInvocationID().String()
		outcome := Outcome{Index: i + 1, ID: step.ID, Tool: step.Tool}

		params := step.Params
		if params == nil {
			params = map[string]interface{}{}
		}

		result, err := r.exec.Execute(ctx, step.Tool, params, &types.Context{RequestID: &reqID, Source: &source})
		outcome.Result = result
		if err != nil {
			outcome.Error = err.Error()
			r.logger.Warn("Step failed", zap.Int("step", i+1), zap.String("tool", step.Tool), zap.Error(err))
		}

		if outcome.Succeeded() {
			report.Succeeded++
		} else {
			report.Failed++
		}
		report.Steps = append(report.Steps, outcome)
	}

	report.Elapsed = time.Since(start)
	if r.metrics != nil {
		r.metrics.RecordBatch(format, report.Succeeded, report.Failed)
	}
	r.logger.Info("Batch finished",
		zap.String("run_id", runID),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}
