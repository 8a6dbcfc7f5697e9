package calculator

// Calculator is the stateless service object for all operations.
// The zero value is ready to use.
type Calculator struct{}

// New creates a calculator
func New() Calculator {
	return Calculator{}
}
