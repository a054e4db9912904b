package core

import (
	"fmt"
	"testing"
)

func TestIsInvalidInputError(t *testing.T) {
	cases := []error{
		ErrInvalidInput,
		ErrInsufficientData,
		ErrNonFiniteValue,
		ErrInvalidLevel,
		NewInvalidInputError("confidence level", "must lie strictly between 0 and 1"),
		NewNonFiniteValueError(3, 0),
		fmt.Errorf("reading sample: %w", ErrInsufficientData),
	}
	for _, err := range cases {
		if !IsInvalidInputError(err) {
			t.Errorf("expected %v to classify as invalid input", err)
		}
		if IsNumericalFailureError(err) {
			t.Errorf("expected %v not to classify as numerical failure", err)
		}
	}
}

func TestIsNumericalFailureError(t *testing.T) {
	cases := []error{
		ErrNumericalFailure,
		NewNumericalFailureError("t-distribution quantile did not converge", nil),
		NewNumericalFailureError("mean", fmt.Errorf("empty input")),
		fmt.Errorf("computing interval: %w", ErrNumericalFailure),
	}
	for _, err := range cases {
		if !IsNumericalFailureError(err) {
			t.Errorf("expected %v to classify as numerical failure", err)
		}
		if IsInvalidInputError(err) {
			t.Errorf("expected %v not to classify as invalid input", err)
		}
	}
}

func TestErrorClassifiersRejectUnrelatedErrors(t *testing.T) {
	err := fmt.Errorf("file not found")
	if IsInvalidInputError(err) || IsNumericalFailureError(err) {
		t.Errorf("unrelated error %v should not match either classifier", err)
	}
	if IsInvalidInputError(nil) || IsNumericalFailureError(nil) {
		t.Error("nil should not match either classifier")
	}
}
