package analysis

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"meanci/domain/core"
	"meanci/domain/stats"
)

// Describe computes the descriptive statistics an interval estimate is built
// from: mean, bias-corrected standard deviation (n-1 denominator), and the
// standard error of the mean.
func Describe(sample stats.Sample) (stats.Estimate, error) {
	values := sample.Values()

	mean, err := mstats.Mean(values)
	if err != nil {
		return stats.Estimate{}, core.NewNumericalFailureError("mean", err)
	}

	stdDev, err := mstats.StandardDeviationSample(values)
	if err != nil {
		return stats.Estimate{}, core.NewNumericalFailureError("sample standard deviation", err)
	}

	n := sample.Size()
	return stats.Estimate{
		Mean:             mean,
		StdDev:           stdDev,
		StandardError:    stdDev / math.Sqrt(float64(n)),
		SampleSize:       n,
		DegreesOfFreedom: sample.DegreesOfFreedom(),
	}, nil
}

// MeanInterval computes the two-sided t-distribution confidence interval for
// the population mean of the given sample.
//
// The critical value is the t-quantile at 1 - alpha/2; by symmetry the lower
// critical value is its negation, so the interval is mean +/- t*stderr.
// When every sample value is identical the standard error is zero and the
// interval degenerates to (mean, mean).
func MeanInterval(sample stats.Sample, level stats.ConfidenceLevel) (stats.ConfidenceInterval, error) {
	est, err := Describe(sample)
	if err != nil {
		return stats.ConfidenceInterval{}, err
	}

	tCritical, err := TQuantile(1.0-level.Alpha()/2.0, est.DegreesOfFreedom)
	if err != nil {
		return stats.ConfidenceInterval{}, err
	}

	margin := tCritical * est.StandardError
	return stats.ConfidenceInterval{
		Lower:    est.Mean - margin,
		Upper:    est.Mean + margin,
		Level:    level,
		Estimate: est,
	}, nil
}

// MeanIntervalValues validates raw inputs and computes the interval. This is
// the single callable surface wrappers are expected to use.
func MeanIntervalValues(values []float64, level float64) (stats.ConfidenceInterval, error) {
	sample, err := stats.NewSample(values)
	if err != nil {
		return stats.ConfidenceInterval{}, err
	}
	cl, err := stats.NewConfidenceLevel(level)
	if err != nil {
		return stats.ConfidenceInterval{}, err
	}
	return MeanInterval(sample, cl)
}

// MeanIntervalNormal computes the interval using the standard normal quantile
// instead of the t-quantile. For large samples the t-based interval converges
// to this one; it exists for that comparison, not as a substitute.
func MeanIntervalNormal(sample stats.Sample, level stats.ConfidenceLevel) (stats.ConfidenceInterval, error) {
	est, err := Describe(sample)
	if err != nil {
		return stats.ConfidenceInterval{}, err
	}

	zCritical := NormalQuantile(1.0 - level.Alpha()/2.0)
	margin := zCritical * est.StandardError
	return stats.ConfidenceInterval{
		Lower:    est.Mean - margin,
		Upper:    est.Mean + margin,
		Level:    level,
		Estimate: est,
	}, nil
}
