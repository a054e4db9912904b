package testkit

import (
	"fmt"
	"math/rand"
)

// NormalConfig controls synthetic normal sample generation.
type NormalConfig struct {
	N     int
	Mu    float64
	Sigma float64
	Seed  int64
}

// DefaultNormalConfig mirrors the canonical worked example: 1000 draws from
// Normal(10, 2).
func DefaultNormalConfig() NormalConfig {
	return NormalConfig{
		N:     1000,
		Mu:    10,
		Sigma: 2,
		Seed:  42,
	}
}

// GenerateNormal draws cfg.N pseudo-random values from Normal(Mu, Sigma),
// deterministic for a fixed seed.
func GenerateNormal(cfg NormalConfig) ([]float64, error) {
	if cfg.N <= 0 {
		return nil, fmt.Errorf("n must be > 0")
	}
	if cfg.Sigma < 0 {
		return nil, fmt.Errorf("sigma must be >= 0")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	out := make([]float64, cfg.N)
	for i := range out {
		out[i] = cfg.Mu + cfg.Sigma*rng.NormFloat64()
	}
	return out, nil
}

// CholesterolSample returns the fixed 20-reading cholesterol dataset used as
// the worked small-sample example throughout the repo.
func CholesterolSample() []float64 {
	return []float64{
		66.0, 36.0, 73.0, 48.0, 81.0,
		69.0, 75.0, 81.0, 73.0, 69.0,
		101.0, 70.0, 50.0, 42.0, 36.0,
		71.0, 65.0, 43.0, 76.0, 24.0,
	}
}
