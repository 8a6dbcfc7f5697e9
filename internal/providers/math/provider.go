package math

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/calculator/internal/calculator"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/logging"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calculator/internal/shared/id"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Provider exposes the calculator as math.* tools
type Provider struct {
	arithmetic  *ArithmeticOps
	theory      *NumberTheoryOps
	stats       *StatsOps
	finance     *FinanceOps
	conversions *ConversionsOps

	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// Option configures a Provider
type Option func(*Provider)

// WithLogger sets the logger used for per-call debug lines
func WithLogger(logger *logging.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger.Named("math")
		}
	}
}

// WithMetrics records every call
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(p *Provider) {
		p.metrics = metrics
	}
}

// NewProvider creates a math provider
func NewProvider(opts ...Option) *Provider {
	ops := &MathOps{Calc: calculator.New()}

	p := &Provider{
		arithmetic:  &ArithmeticOps{MathOps: ops},
		theory:      &NumberTheoryOps{MathOps: ops},
		stats:       &StatsOps{MathOps: ops},
		finance:     &FinanceOps{MathOps: ops},
		conversions: &ConversionsOps{MathOps: ops},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.theory.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.finance.GetTools()...)
	tools = append(tools, m.conversions.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Numeric operations: arithmetic, number theory, statistics, finance and unit conversions",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"number_theory",
			"statistics",
			"finance",
			"conversions",
		},
		Tools: tools,
	}
}

// Execute routes to the owning module, then logs and records the call
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	invocation := invocationID(appCtx)
	start := time.Now()

	result, err := m.route(ctx, toolID, params, appCtx)

	elapsed := time.Since(start)
	code := ""
	switch {
	case err != nil:
		code = "internal"
	case !result.Success:
		code = result.Code
	}

	if m.metrics != nil {
		m.metrics.RecordToolCall(toolID, elapsed, code)
	}

	log := m.logger.WithInvocation(toolID, invocation)
	if code == "" {
		log.Debug("Tool executed", zap.Duration("elapsed", elapsed))
	} else {
		log.Debug("Tool failed", zap.String("code", code), zap.Duration("elapsed", elapsed), zap.Error(err))
	}

	return result, err
}

func (m *Provider) route(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "math.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "math.subtract":
		return m.arithmetic.Subtract(ctx, params, appCtx)
	case "math.multiply":
		return m.arithmetic.Multiply(ctx, params, appCtx)
	case "math.divide":
		return m.arithmetic.Divide(ctx, params, appCtx)
	case "math.isEven":
		return m.arithmetic.IsEven(ctx, params, appCtx)
	case "math.factorial":
		return m.arithmetic.Factorial(ctx, params, appCtx)
	case "math.power":
		return m.arithmetic.Power(ctx, params, appCtx)
	case "math.sqrt":
		return m.arithmetic.Sqrt(ctx, params, appCtx)

	// Number theory
	case "math.gcd":
		return m.theory.GCD(ctx, params, appCtx)
	case "math.lcm":
		return m.theory.LCM(ctx, params, appCtx)
	case "math.isPrime":
		return m.theory.IsPrime(ctx, params, appCtx)
	case "math.fibonacci":
		return m.theory.Fibonacci(ctx, params, appCtx)

	// Stats operations
	case "math.mean":
		return m.stats.Mean(ctx, params, appCtx)
	case "math.median":
		return m.stats.Median(ctx, params, appCtx)
	case "math.max":
		return m.stats.Max(ctx, params, appCtx)
	case "math.min":
		return m.stats.Min(ctx, params, appCtx)
	case "math.sum":
		return m.stats.Sum(ctx, params, appCtx)
	case "math.range":
		return m.stats.Range(ctx, params, appCtx)
	case "math.variance":
		return m.stats.Variance(ctx, params, appCtx)
	case "math.stdev":
		return m.stats.Stdev(ctx, params, appCtx)

	// Finance
	case "math.percentage":
		return m.finance.Percentage(ctx, params, appCtx)
	case "math.compoundInterest":
		return m.finance.CompoundInterest(ctx, params, appCtx)

	// Conversions
	case "math.celsiusToFahrenheit":
		return m.conversions.CelsiusToFahrenheit(ctx, params, appCtx)
	case "math.fahrenheitToCelsius":
		return m.conversions.FahrenheitToCelsius(ctx, params, appCtx)
	case "math.milesToKilometers":
		return m.conversions.MilesToKilometers(ctx, params, appCtx)
	case "math.kilometersToMiles":
		return m.conversions.KilometersToMiles(ctx, params, appCtx)

	default:
		return Failure(types.CodeUnknownTool, fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func invocationID(appCtx *types.Context) string {
	if appCtx != nil && appCtx.RequestID != nil && *appCtx.RequestID != "" {
		return *appCtx.RequestID
	}
	return id.NewInvocationID().String()
}
