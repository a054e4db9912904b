package stats

import (
	"math"

	"meanci/domain/core"
)

// Sample is an immutable sequence of finite real-valued measurements.
// INVARIANTS:
// - length >= 2 (degrees of freedom >= 1, sample variance defined)
// - every value is finite (no NaN, no Inf)
type Sample struct {
	values []float64
}

// NewSample validates and copies the given measurements into a Sample.
func NewSample(values []float64) (Sample, error) {
	if len(values) < 2 {
		return Sample{}, core.ErrInsufficientData
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sample{}, core.NewNonFiniteValueError(i, v)
		}
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	return Sample{values: copied}, nil
}

// Values returns a copy of the underlying measurements.
func (s Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Size returns the number of measurements n.
func (s Sample) Size() int {
	return len(s.values)
}

// DegreesOfFreedom returns n - 1.
func (s Sample) DegreesOfFreedom() int {
	return len(s.values) - 1
}

// ConfidenceLevel is a probability strictly inside (0, 1), e.g. 0.95.
type ConfidenceLevel float64

// NewConfidenceLevel validates the given level.
func NewConfidenceLevel(level float64) (ConfidenceLevel, error) {
	if math.IsNaN(level) || level <= 0 || level >= 1 {
		return 0, core.ErrInvalidLevel
	}
	return ConfidenceLevel(level), nil
}

// Alpha returns the total tail probability 1 - level.
func (cl ConfidenceLevel) Alpha() float64 {
	return 1.0 - float64(cl)
}

// Float returns the level as a plain float64.
func (cl ConfidenceLevel) Float() float64 {
	return float64(cl)
}

// Estimate holds the descriptive statistics behind an interval
type Estimate struct {
	Mean             float64 `json:"mean"`
	StdDev           float64 `json:"std_dev"`        // bias-corrected (n-1 denominator)
	StandardError    float64 `json:"standard_error"` // StdDev / sqrt(n)
	SampleSize       int     `json:"sample_size"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
}

// ConfidenceInterval is a two-sided interval estimate for the population mean.
// INVARIANT: Lower <= Upper (equal only when the standard error is zero).
type ConfidenceInterval struct {
	Lower    float64         `json:"lower"`
	Upper    float64         `json:"upper"`
	Level    ConfidenceLevel `json:"level"`
	Estimate Estimate        `json:"estimate"`
}

// Width returns Upper - Lower.
func (ci ConfidenceInterval) Width() float64 {
	return ci.Upper - ci.Lower
}

// Margin returns the half-width (margin of error).
func (ci ConfidenceInterval) Margin() float64 {
	return (ci.Upper - ci.Lower) / 2.0
}

// Contains reports whether v lies inside the interval (inclusive).
func (ci ConfidenceInterval) Contains(v float64) bool {
	return v >= ci.Lower && v <= ci.Upper
}
