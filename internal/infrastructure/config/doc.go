// Package config loads process settings from CALC_* environment variables
// using kelseyhightower/envconfig. Command-line flags override these values.
package config
