package testkit

import (
	"math"
	"testing"
)

func TestGenerateNormalDeterministicForSeed(t *testing.T) {
	cfg := NormalConfig{N: 100, Mu: 10, Sigma: 2, Seed: 42}

	first, err := GenerateNormal(cfg)
	if err != nil {
		t.Fatalf("GenerateNormal: %v", err)
	}
	second, err := GenerateNormal(cfg)
	if err != nil {
		t.Fatalf("GenerateNormal: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed diverged at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateNormalMomentsRoughlyMatch(t *testing.T) {
	draw, err := GenerateNormal(DefaultNormalConfig())
	if err != nil {
		t.Fatalf("GenerateNormal: %v", err)
	}
	if len(draw) != 1000 {
		t.Fatalf("expected 1000 draws, got %d", len(draw))
	}

	sum := 0.0
	for _, v := range draw {
		sum += v
	}
	mean := sum / float64(len(draw))

	// With n=1000 and sigma=2, the sample mean should land within ~5 standard
	// errors of mu: 5 * 2/sqrt(1000) ~= 0.32.
	if math.Abs(mean-10) > 0.32 {
		t.Errorf("sample mean %.4f too far from mu=10", mean)
	}
}

func TestGenerateNormalRejectsBadConfig(t *testing.T) {
	if _, err := GenerateNormal(NormalConfig{N: 0, Sigma: 1}); err == nil {
		t.Error("expected error for n=0")
	}
	if _, err := GenerateNormal(NormalConfig{N: 10, Sigma: -1}); err == nil {
		t.Error("expected error for negative sigma")
	}
}

func TestCholesterolSampleFixture(t *testing.T) {
	values := CholesterolSample()
	if len(values) != 20 {
		t.Fatalf("expected 20 readings, got %d", len(values))
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if math.Abs(sum/20-62.45) > 1e-9 {
		t.Errorf("fixture mean = %.4f, want 62.45", sum/20)
	}
}
