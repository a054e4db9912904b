package analysis

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"meanci/domain/stats"
	"meanci/internal/testkit"
)

// StudyConfig controls a resampling width study: for each sample size, draw
// Resamples independent samples from Normal(Mu, Sigma) and average the width
// of the resulting confidence intervals.
type StudyConfig struct {
	SampleSizes []int
	Resamples   int
	Mu          float64
	Sigma       float64
	Seed        int64
	Level       stats.ConfidenceLevel
	Workers     int64 // max concurrent resamples
}

// DefaultStudyConfig returns a study spanning small to large samples. The
// caller supplies Level; everything else has a usable default.
func DefaultStudyConfig() StudyConfig {
	return StudyConfig{
		SampleSizes: []int{10, 30, 100, 1000},
		Resamples:   200,
		Mu:          10,
		Sigma:       2,
		Seed:        42,
		Workers:     4,
	}
}

// StudyResult is the averaged interval width for one sample size.
type StudyResult struct {
	SampleSize int     `json:"sample_size"`
	Resamples  int     `json:"resamples"`
	MeanWidth  float64 `json:"mean_width"`
}

// WidthStudy runs the resampling study with bounded concurrency. Each
// resample gets a seed derived from cfg.Seed, so results are deterministic
// regardless of scheduling order. Interval width shrinks with sample size in
// expectation; the study makes that visible.
func WidthStudy(ctx context.Context, cfg StudyConfig) ([]StudyResult, error) {
	if len(cfg.SampleSizes) == 0 {
		return nil, fmt.Errorf("at least one sample size required")
	}
	if cfg.Resamples <= 0 {
		return nil, fmt.Errorf("resamples must be > 0")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	sem := semaphore.NewWeighted(workers)
	results := make([]StudyResult, 0, len(cfg.SampleSizes))

	for sizeIdx, n := range cfg.SampleSizes {
		if n < 2 {
			return nil, fmt.Errorf("sample size %d too small, need n >= 2", n)
		}

		widths := make([]float64, cfg.Resamples)
		var wg sync.WaitGroup
		var mu sync.Mutex
		var firstErr error

		for r := 0; r < cfg.Resamples; r++ {
			if err := sem.Acquire(ctx, 1); err != nil {
				wg.Wait()
				return nil, err
			}

			wg.Add(1)
			go func(sizeIdx, n, r int) {
				defer sem.Release(1)
				defer wg.Done()

				draw, err := testkit.GenerateNormal(testkit.NormalConfig{
					N:     n,
					Mu:    cfg.Mu,
					Sigma: cfg.Sigma,
					Seed:  cfg.Seed + int64(sizeIdx)*1_000_003 + int64(r),
				})
				if err == nil {
					var ci stats.ConfidenceInterval
					ci, err = MeanIntervalValues(draw, cfg.Level.Float())
					if err == nil {
						widths[r] = ci.Width()
						return
					}
				}

				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}(sizeIdx, n, r)
		}

		wg.Wait()
		if firstErr != nil {
			return nil, firstErr
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sum := 0.0
		for _, w := range widths {
			sum += w
		}
		results = append(results, StudyResult{
			SampleSize: n,
			Resamples:  cfg.Resamples,
			MeanWidth:  sum / float64(cfg.Resamples),
		})
	}

	return results, nil
}
