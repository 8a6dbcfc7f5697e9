// Package main is the entry point for the calculator CLI.
//
// Without a subcommand it prints the demonstration walkthrough of every
// operation group. Subcommands expose the same operations as math.* tools:
//
//	calculator                     # demo
//	calculator tools               # list tool definitions
//	calculator discover "square root"
//	calculator exec math.divide --params '{"a": 15, "b": 3}'
//	calculator batch steps.yaml    # .yaml, .toml or .json
//
// Configuration:
//   - Environment variables: CALC_LOG_LEVEL, CALC_LOG_DEV, CALC_OUTPUT, CALC_METRICS
//   - CLI flags (override env vars): --output, --metrics, --dev
//
// Logs go to stderr; results go to stdout.
//
// Signals:
//   - SIGINT, SIGTERM: a running batch stops before its next step
package main
