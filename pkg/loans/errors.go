package loans

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput is returned when a parameter violates its precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNeverAmortizes is returned when the monthly outflow cannot cover the
	// monthly interest, so the principal is never reduced.
	ErrNeverAmortizes = errors.New("payment never amortizes the loan")

	// ErrArithmeticDomain is returned when a power or logarithm is requested
	// for an operand outside its domain.
	ErrArithmeticDomain = errors.New("arithmetic domain error")
)

// InputError describes a rejected parameter. It matches ErrInvalidInput
// under errors.Is.
type InputError struct {
	Param  string
	Value  decimal.Decimal
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s %s", ErrInvalidInput, e.Param, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(param string, value decimal.Decimal, reason string) error {
	return &InputError{Param: param, Value: value, Reason: reason}
}
