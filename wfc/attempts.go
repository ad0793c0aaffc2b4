// Package wfc - reseeding driver.
//
// A single Run never backtracks, so contradictions are handled by trying
// again with a different seed. Attempts does that over a bounded number of
// attempts, optionally spreading them over several workers. Each worker owns
// its own Model; the solver itself stays single-threaded.
package wfc

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// AttemptOptions configures Attempts.
//
// Seed     – parent seed; attempt k runs with DeriveSeed(Seed, k).
// Attempts – number of attempts (> 0).
// Workers  – parallel workers, clamped to [1, Attempts].
// Limit    – step limit handed to every Run (Unbounded for none).
type AttemptOptions struct {
	Seed     int64
	Attempts int
	Workers  int
	Limit    int
}

// DefaultAttemptOptions returns ten sequential unbounded attempts from seed 0.
func DefaultAttemptOptions() AttemptOptions {
	return AttemptOptions{
		Seed:     0,
		Attempts: 10,
		Workers:  1,
		Limit:    Unbounded,
	}
}

// AttemptResult describes the winning attempt.
type AttemptResult struct {
	Attempt  int     // attempt index k
	Seed     int64   // seed the attempt ran with
	Outcome  Outcome // always Success when err == nil
	Observed []int   // solved grid
	Model    *Model  // model holding the solved state, e.g. for rendering
}

// Attempts runs reseeded solve attempts until one succeeds.
//
// build must return a fresh Model on every call. It is called lazily by each
// worker, again after that worker's Model produced a success, and
// concurrently when Workers > 1 (as are the Model's hooks).
//
// The result is deterministic: among successful attempts the one with the
// lowest index wins, whatever the scheduling. Attempts above a known winner
// are skipped.
//
// ctx is checked only between attempts: cancellation stops new attempts from
// starting but does not interrupt a Run already in progress, so a single
// long attempt can outlive the deadline.
//
// Errors:
//   - ErrOptionViolation if opts.Attempts <= 0.
//   - ErrNoSolution (wrapped with failure counts) if no attempt succeeded.
//   - errors from build, or ctx.Err() if cancelled before any success.
func Attempts(ctx context.Context, build func() (*Model, error), opts AttemptOptions) (AttemptResult, error) {
	n := opts.Attempts
	if n <= 0 {
		return AttemptResult{}, fmt.Errorf("%w: attempts must be positive (%d)", ErrOptionViolation, n)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	var (
		best      atomic.Int64 // lowest successful attempt, n if none yet
		failed    atomic.Int64
		exhausted atomic.Int64
		results   = make([]AttemptResult, n)
		next      = make(chan int)
	)
	best.Store(int64(n))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(next)
		for k := 0; k < n; k++ {
			if int64(k) >= best.Load() {
				return nil
			}
			select {
			case next <- k:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			var m *Model
			for k := range next {
				if int64(k) > best.Load() {
					continue
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				// a winning model is handed out in results and never rerun
				if m == nil {
					var err error
					if m, err = build(); err != nil {
						return err
					}
				}

				seed := DeriveSeed(opts.Seed, k)
				out := m.Run(seed, opts.Limit)
				switch out {
				case Success:
					observed, _ := m.Observed()
					results[k] = AttemptResult{Attempt: k, Seed: seed, Outcome: out, Observed: observed, Model: m}
					lowerTo(&best, int64(k))
					m = nil
				case Failure:
					failed.Add(1)
				case BudgetExhausted:
					exhausted.Add(1)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if b := best.Load(); b < int64(n) {
		return results[b], nil
	}
	if err != nil {
		return AttemptResult{}, err
	}

	return AttemptResult{}, fmt.Errorf("%w: %d failed, %d ran out of budget",
		ErrNoSolution, failed.Load(), exhausted.Load())
}

// lowerTo atomically sets v to min(v, k).
func lowerTo(v *atomic.Int64, k int64) {
	for {
		cur := v.Load()
		if k >= cur || v.CompareAndSwap(cur, k) {
			return
		}
	}
}
