package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/GriffinCanCode/calculator/internal/calculator"
)

// stickyWriter keeps the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) line(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format+"\n", args...)
}

// Demo walks every operation group with fixed sample arguments.
func Demo(w io.Writer, calc calculator.Calculator) error {
	out := &stickyWriter{w: w}

	out.line("Enhanced Calculator Application")
	out.line("===============================")

	out.line("=== Basic Operations ===")
	out.line("5 + 3 = %d", calc.Add(5, 3))
	out.line("10 - 4 = %d", calc.Subtract(10, 4))
	out.line("6 * 7 = %d", calc.Multiply(6, 7))
	quotient, err := calc.Divide(15, 3)
	if err != nil {
		return err
	}
	out.line("15 / 3 = %s", Number(quotient))

	out.line("\n=== Advanced Math ===")
	out.line("2^8 = %s", Number(calc.Power(2, 8)))
	root, err := calc.SquareRoot(25)
	if err != nil {
		return err
	}
	out.line("√25 = %s", Number(root))
	fact, err := calc.Factorial(5)
	if err != nil {
		return err
	}
	out.line("5! = %d", fact)

	out.line("\n=== Number Theory ===")
	out.line("GCD(48, 18) = %d", calc.GreatestCommonDivisor(48, 18))
	out.line("LCM(12, 8) = %d", calc.LeastCommonMultiple(12, 8))
	out.line("Is 17 prime? %s", Bool(calc.IsPrime(17)))
	out.line("Is 15 even? %s", Bool(calc.IsEven(15)))

	out.line("\n=== Fibonacci Sequence (first 8) ===")
	fib, err := calc.FibonacciSequence(8)
	if err != nil {
		return err
	}
	out.line("%s", Ints(fib))

	out.line("\n=== Statistics ===")
	numbers := []float64{10, 20, 30, 40, 50}
	out.line("Numbers: %s", Floats(numbers))
	avg, err := calc.Average(numbers)
	if err != nil {
		return err
	}
	max, err := calc.Max(numbers)
	if err != nil {
		return err
	}
	min, err := calc.Min(numbers)
	if err != nil {
		return err
	}
	out.line("Average: %s", Fixed(avg, 2))
	out.line("Max: %s", Number(max))
	out.line("Min: %s", Number(min))

	out.line("\n=== Percentage ===")
	pct, err := calc.Percentage(25, 100)
	if err != nil {
		return err
	}
	out.line("25 out of 100 = %s%%", Number(pct))

	out.line("\n=== Error Handling ===")
	// Each block handles only its documented kind; anything else propagates.
	q, err := calc.Divide(10, 0)
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		out.line("Error: %s", err.Error())
	case err != nil:
		return err
	default:
		out.line("10 / 0 = %s", Number(q))
	}

	r, err := calc.SquareRoot(-4)
	switch {
	case errors.Is(err, calculator.ErrInvalidArgument):
		out.line("Error: %s", err.Error())
	case err != nil:
		return err
	default:
		out.line("√(-4) = %s", Number(r))
	}

	out.line("\nApplication completed successfully!")
	return out.err
}
