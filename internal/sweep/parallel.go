package sweep

import (
	"context"
	"runtime"
	"sync"

	"github.com/go-logr/logr"
)

// RunParallel is Run with the points split across workers. Every point
// builds its own star and planet, so no entity is shared between goroutines.
// workers <= 0 uses GOMAXPROCS.
func RunParallel(ctx context.Context, spec Spec, workers int) (*Series, error) {
	n := len(spec.Values)
	if n == 0 {
		return nil, ErrNoValues
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	ys := make([]float64, n)
	errs := make([]error, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				star, planet := spec.Base.build()
				if err := apply(star, planet, spec.Param, spec.Values[i]); err != nil {
					errs[w] = err
					return
				}
				out, err := read(star, planet, spec.Output)
				if err != nil {
					errs[w] = err
					return
				}
				ys[i] = out
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	logr.FromContextOrDiscard(ctx).WithName("sweep").V(1).Info("parallel sweep finished",
		"param", spec.Param, "output", spec.Output, "points", n, "workers", workers)

	return &Series{
		Param:  spec.Param,
		Output: spec.Output,
		X:      append([]float64(nil), spec.Values...),
		Y:      ys,
	}, nil
}
