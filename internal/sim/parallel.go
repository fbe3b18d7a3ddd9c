package sim

import (
	"context"
	"sync"
)

// Factory builds an independent loop for one seed.
type Factory func(seed int64) (*Loop, error)

// Ensemble runs the same scene with consecutive seeds in parallel.
type Ensemble struct {
	factory   Factory
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory Factory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			loop, err := e.factory(e.seedStart + int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = loop.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MeanSeries averages a named series frame by frame across results.
func MeanSeries(results []*Result, name string) []float64 {
	var out []float64
	counts := []int{}
	for _, r := range results {
		if r == nil {
			continue
		}
		for i, v := range r.Series[name] {
			if i >= len(out) {
				out = append(out, 0)
				counts = append(counts, 0)
			}
			out[i] += v
			counts[i]++
		}
	}
	for i := range out {
		out[i] /= float64(counts[i])
	}
	return out
}
