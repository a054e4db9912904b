package stats

import (
	"errors"
	"math"
	"testing"

	"meanci/domain/core"
)

func TestNewSampleRejectsShortInput(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {7.0}} {
		_, err := NewSample(values)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %v, got %v", values, err)
		}
	}
}

func TestNewSampleRejectsNonFiniteValues(t *testing.T) {
	cases := [][]float64{
		{1.0, math.NaN()},
		{math.Inf(1), 2.0},
		{1.0, 2.0, math.Inf(-1)},
	}
	for _, values := range cases {
		_, err := NewSample(values)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %v, got %v", values, err)
		}
	}
}

func TestSampleCopiesInput(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0}
	sample, err := NewSample(values)
	if err != nil {
		t.Fatalf("NewSample: %v", err)
	}

	values[0] = 99.0
	got := sample.Values()
	if got[0] != 1.0 {
		t.Errorf("sample mutated through caller slice: got %v", got)
	}

	got[1] = 99.0
	if sample.Values()[1] != 2.0 {
		t.Errorf("sample mutated through returned slice")
	}
}

func TestSampleDegreesOfFreedom(t *testing.T) {
	sample, err := NewSample([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewSample: %v", err)
	}
	if sample.Size() != 5 {
		t.Errorf("expected size 5, got %d", sample.Size())
	}
	if sample.DegreesOfFreedom() != 4 {
		t.Errorf("expected df 4, got %d", sample.DegreesOfFreedom())
	}
}

func TestNewConfidenceLevelBounds(t *testing.T) {
	for _, level := range []float64{0.0, 1.0, -0.5, 1.5, math.NaN()} {
		_, err := NewConfidenceLevel(level)
		if !errors.Is(err, core.ErrInvalidLevel) {
			t.Errorf("expected ErrInvalidLevel for %v, got %v", level, err)
		}
	}

	cl, err := NewConfidenceLevel(0.95)
	if err != nil {
		t.Fatalf("NewConfidenceLevel(0.95): %v", err)
	}
	if math.Abs(cl.Alpha()-0.05) > 1e-12 {
		t.Errorf("expected alpha 0.05, got %v", cl.Alpha())
	}
}

func TestConfidenceIntervalHelpers(t *testing.T) {
	ci := ConfidenceInterval{Lower: 53.46, Upper: 71.44}

	if math.Abs(ci.Width()-17.98) > 1e-9 {
		t.Errorf("expected width 17.98, got %v", ci.Width())
	}
	if math.Abs(ci.Margin()-8.99) > 1e-9 {
		t.Errorf("expected margin 8.99, got %v", ci.Margin())
	}
	if !ci.Contains(62.45) {
		t.Error("expected interval to contain 62.45")
	}
	if ci.Contains(100.0) {
		t.Error("expected interval to exclude 100.0")
	}
}
