package math

import (
	"context"

	"github.com/GriffinCanCode/calculator/internal/types"
)

// ConversionsOps handles unit conversions
type ConversionsOps struct {
	*MathOps
}

func unitParam(name, description string) []types.Parameter {
	return []types.Parameter{{Name: name, Type: "number", Description: description, Required: true}}
}

// GetTools returns conversion tool definitions
func (c *ConversionsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.celsiusToFahrenheit",
			Name:        "Celsius to Fahrenheit",
			Description: "Convert temperature from Celsius to Fahrenheit",
			Parameters:  unitParam("celsius", "Temperature in Celsius"),
			Returns:     "number",
		},
		{
			ID:          "math.fahrenheitToCelsius",
			Name:        "Fahrenheit to Celsius",
			Description: "Convert temperature from Fahrenheit to Celsius",
			Parameters:  unitParam("fahrenheit", "Temperature in Fahrenheit"),
			Returns:     "number",
		},
		{
			ID:          "math.milesToKilometers",
			Name:        "Miles to Kilometers",
			Description: "Convert distance from miles to kilometers",
			Parameters:  unitParam("miles", "Distance in miles"),
			Returns:     "number",
		},
		{
			ID:          "math.kilometersToMiles",
			Name:        "Kilometers to Miles",
			Description: "Convert distance from kilometers to miles",
			Parameters:  unitParam("kilometers", "Distance in kilometers"),
			Returns:     "number",
		},
	}
}

func convert(params map[string]interface{}, key string, fn func(float64) float64) (*types.Result, error) {
	v, ok := GetNumber(params, key)
	if !ok {
		return invalidParams("%s parameter required", key)
	}
	return Success(map[string]interface{}{"result": fn(v)})
}

// CelsiusToFahrenheit converts C to F
func (c *ConversionsOps) CelsiusToFahrenheit(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return convert(params, "celsius", c.Calc.CelsiusToFahrenheit)
}

// FahrenheitToCelsius converts F to C
func (c *ConversionsOps) FahrenheitToCelsius(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return convert(params, "fahrenheit", c.Calc.FahrenheitToCelsius)
}

// MilesToKilometers converts miles to kilometers
func (c *ConversionsOps) MilesToKilometers(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return convert(params, "miles", c.Calc.MilesToKilometers)
}

// KilometersToMiles converts kilometers to miles
func (c *ConversionsOps) KilometersToMiles(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return convert(params, "kilometers", c.Calc.KilometersToMiles)
}
