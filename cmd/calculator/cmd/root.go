package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/calculator/internal/infrastructure/config"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/logging"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calculator/internal/providers/math"
	"github.com/GriffinCanCode/calculator/internal/service"
)

// app is the per-invocation wiring shared by every subcommand
type app struct {
	cfg      *config.Config
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	registry *service.Registry
}

type rootOptions struct {
	output  string
	metrics bool
	dev     bool
}

// newRootCommand builds the command tree and the app it wires. Each call
// returns an independent pair, so tests can run commands side by side.
func newRootCommand() (*cobra.Command, *app) {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:   "calculator",
		Short: "Numeric operations from the command line",
		Long: `calculator runs arithmetic, number theory, statistics, finance and
unit conversion operations.

Without a subcommand it prints the demonstration walkthrough.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", config.FormatText, "Output format: text, json or yaml")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print collected metrics to stderr after the command")
	flags.BoolVar(&opts.dev, "dev", false, "Development logging (console encoding, debug level)")

	root.AddCommand(
		newDemoCommand(),
		newToolsCommand(a),
		newDiscoverCommand(a),
		newExecCommand(a),
		newBatchCommand(a),
	)
	return root, a
}

// Execute runs the CLI with os.Args
func Execute() error {
	return execute(newRootCommand())
}

// execute runs root and then flushes logs and prints metrics, whether or
// not the command failed.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()
	if ferr := a.finish(root.ErrOrStderr()); err == nil {
		err = ferr
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = opts.output
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = opts.metrics
	}
	if flags.Changed("dev") && opts.dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry()
	if err := registry.Register(math.NewProvider(math.WithLogger(logger), math.WithMetrics(metrics))); err != nil {
		return fmt.Errorf("failed to register math provider: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.Named("cli")
	a.metrics = metrics
	a.registry = registry

	a.logger.Debug("Registry ready", zap.Any("stats", registry.Stats()))
	return nil
}

func (a *app) finish(stderr io.Writer) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.cfg != nil && a.cfg.Metrics.Enabled {
		return a.metrics.Write(stderr)
	}
	return nil
}
