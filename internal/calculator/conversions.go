package calculator

// KilometersPerMile is the fixed, rounded conversion factor. Miles/kilometer
// round trips carry a small residual from it.
const KilometersPerMile = 1.60934

// CelsiusToFahrenheit converts °C to °F
func (Calculator) CelsiusToFahrenheit(celsius float64) float64 {
	return (celsius * 9.0 / 5.0) + 32
}

// FahrenheitToCelsius converts °F to °C
func (Calculator) FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5.0 / 9.0
}

// MilesToKilometers converts miles to kilometers
func (Calculator) MilesToKilometers(miles float64) float64 {
	return miles * KilometersPerMile
}

// KilometersToMiles converts kilometers to miles
func (Calculator) KilometersToMiles(kilometers float64) float64 {
	return kilometers / KilometersPerMile
}
