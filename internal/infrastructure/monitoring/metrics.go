package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for tool execution
type Metrics struct {
	registry *prometheus.Registry

	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	BatchRuns  *prometheus.CounterVec
	BatchSteps *prometheus.CounterVec

	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals for quick summaries
type Snapshot struct {
	TotalCalls    int64   `json:"total_calls" yaml:"total_calls"`
	TotalErrors   int64   `json:"total_errors" yaml:"total_errors"`
	TotalDuration float64 `json:"total_duration_seconds" yaml:"total_duration_seconds"`
}

// NewMetrics creates collectors on a private registry, so several
// instances can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_tool_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_tool_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.000001, .00001, .0001, .001, .01, .1},
			},
			[]string{"tool"},
		),
		ToolErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_tool_errors_total",
				Help: "Total number of failed tool executions by error code",
			},
			[]string{"tool", "code"},
		),

		BatchRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_batch_runs_total",
				Help: "Total number of batch runs",
			},
			[]string{"format"},
		),
		BatchSteps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_batch_steps_total",
				Help: "Total number of batch steps by outcome",
			},
			[]string{"status"},
		),
	}
}

// Registry exposes the underlying Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordToolCall records one execution. code is empty on success.
func (m *Metrics) RecordToolCall(tool string, duration time.Duration, code string) {
	status := "success"
	if code != "" {
		status = "error"
		m.ToolErrors.WithLabelValues(tool, code).Inc()
	}
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalCalls++
	if code != "" {
		m.snapshot.TotalErrors++
	}
	m.snapshot.TotalDuration += duration.Seconds()
	m.mu.Unlock()
}

// RecordBatch records a finished batch run
func (m *Metrics) RecordBatch(format string, succeeded, failed int) {
	m.BatchRuns.WithLabelValues(format).Inc()
	m.BatchSteps.WithLabelValues("success").Add(float64(succeeded))
	m.BatchSteps.WithLabelValues("error").Add(float64(failed))
}

// Snapshot returns the running totals
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
