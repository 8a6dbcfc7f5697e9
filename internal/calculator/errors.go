package calculator

import "errors"

// Kind sentinels. Match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
)

// Error is returned by every failing operation.
type Error struct {
	Kind    error  // ErrInvalidArgument or ErrDivisionByZero
	Op      string // operation name, e.g. "Divide"
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Unwrap exposes the kind sentinel.
func (e *Error) Unwrap() error {
	return e.Kind
}

func invalidArgument(op, message string) *Error {
	return &Error{Kind: ErrInvalidArgument, Op: op, Message: message}
}

func divisionByZero(op, message string) *Error {
	return &Error{Kind: ErrDivisionByZero, Op: op, Message: message}
}

// KindOf returns the kind of err, or nil if err did not come from this package.
func KindOf(err error) error {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return nil
}
