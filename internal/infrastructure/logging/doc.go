// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON lines on stderr
//   - Development: colored console output on stderr
//
// Stdout is never written to; it belongs to command output.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Info("Batch finished", zap.Int("steps", 12))
//	logger.WithInvocation("math.divide", id).Debug("Tool executed")
package logging
