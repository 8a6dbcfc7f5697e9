// Package monitoring collects tool execution metrics with Prometheus
// client_golang.
//
// Collectors live on a private registry. Metrics.Write prints the gathered
// samples as plain text for the CLI's --metrics flag.
//
// Metrics:
//   - calculator_tool_calls_total{tool,status}
//   - calculator_tool_duration_seconds{tool}
//   - calculator_tool_errors_total{tool,code}
//   - calculator_batch_runs_total{format}
//   - calculator_batch_steps_total{status}
package monitoring
