package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientData = fmt.Errorf("%w: sample must contain at least 2 values", ErrInvalidInput)
	ErrNonFiniteValue   = fmt.Errorf("%w: sample contains a non-finite value", ErrInvalidInput)
	ErrInvalidLevel     = fmt.Errorf("%w: confidence level must lie strictly between 0 and 1", ErrInvalidInput)

	// Numerical errors
	ErrNumericalFailure = errors.New("numerical failure")
)

// Error constructors with context
func NewInvalidInputError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

func NewNonFiniteValueError(index int, value float64) error {
	return fmt.Errorf("%w at index %d (%v)", ErrNonFiniteValue, index, value)
}

func NewNumericalFailureError(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrNumericalFailure, op)
	}
	return fmt.Errorf("%w: %s: %v", ErrNumericalFailure, op, err)
}

// Error checking helpers
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNumericalFailureError(err error) bool {
	return errors.Is(err, ErrNumericalFailure)
}
