// Package render turns calculator output into text for the console.
//
// Demo prints the walkthrough of every operation group, including the
// error-handling section where Divide(10, 0) and SquareRoot(-4) fail and the
// run continues. Result, Tools and Batch print tool output as plain text,
// JSON (bytedance/sonic) or YAML (goccy/go-yaml).
package render
