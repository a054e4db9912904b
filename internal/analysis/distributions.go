package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"meanci/domain/core"
)

// TQuantile computes the inverse CDF of the Student's t-distribution at
// cumulative probability p with df degrees of freedom.
//
// gonum evaluates this through the regularized incomplete beta function, so
// it stays accurate deep into the tails and for large df (df=999 tracks the
// standard normal quantile) rather than switching formulas abruptly.
func TQuantile(p float64, df int) (float64, error) {
	if df < 1 {
		return 0, core.NewInvalidInputError("degrees of freedom", "must be >= 1")
	}
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return 0, core.NewInvalidInputError("probability", "must lie strictly between 0 and 1")
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	q := tDist.Quantile(p)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, core.NewNumericalFailureError("t-distribution quantile did not converge", nil)
	}
	return q, nil
}

// NormalQuantile computes the quantile function for the standard normal (inverse CDF)
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
