package wfc_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/wfc/wfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAttempts_Options checks the option guard.
func TestAttempts_Options(t *testing.T) {
	build := func() (*wfc.Model, error) { t.Fatal("build must not be called"); return nil, nil }
	opts := wfc.DefaultAttemptOptions()
	opts.Attempts = 0

	_, err := wfc.Attempts(context.Background(), build, opts)
	assert.ErrorIs(t, err, wfc.ErrOptionViolation)
}

// TestAttempts_FirstSuccess verifies that a solvable instance is solved by
// attempt 0, whatever the worker count, and that the winning seed replays.
func TestAttempts_FirstSuccess(t *testing.T) {
	weights, c := unconstrained(1, 2, 3)
	build := func() (*wfc.Model, error) {
		return wfc.New(weights, c, wfc.WithSize(6, 6))
	}

	var results []wfc.AttemptResult
	for _, workers := range []int{1, 4} {
		opts := wfc.DefaultAttemptOptions()
		opts.Seed = seedDet
		opts.Workers = workers

		res, err := wfc.Attempts(context.Background(), build, opts)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Attempt)
		assert.Equal(t, wfc.DeriveSeed(seedDet, 0), res.Seed)
		assert.Equal(t, wfc.Success, res.Outcome)
		require.NotNil(t, res.Model)
		results = append(results, res)
	}
	assert.Equal(t, results[0].Observed, results[1].Observed)

	m := mustModel(t, weights, c, wfc.WithSize(6, 6))
	require.Equal(t, wfc.Success, m.Run(results[0].Seed, wfc.Unbounded))
	replay, err := m.Observed()
	require.NoError(t, err)
	assert.Equal(t, results[0].Observed, replay)

	held, err := results[1].Model.Observed()
	require.NoError(t, err)
	assert.Equal(t, results[1].Observed, held)
}

// TestAttempts_NoSolution runs an unsatisfiable instance through every
// attempt, sequentially and in parallel.
func TestAttempts_NoSolution(t *testing.T) {
	weights, c := checkerboard()
	var builds atomic.Int32
	build := func() (*wfc.Model, error) {
		builds.Add(1)
		return wfc.New(weights, c, wfc.WithSize(3, 3), wfc.WithPeriodic(true))
	}

	for _, workers := range []int{1, 3} {
		builds.Store(0)
		opts := wfc.AttemptOptions{Seed: seedDet, Attempts: 5, Workers: workers, Limit: wfc.Unbounded}
		_, err := wfc.Attempts(context.Background(), build, opts)
		require.ErrorIs(t, err, wfc.ErrNoSolution)
		assert.Contains(t, err.Error(), "5 failed, 0 ran out of budget")
		assert.LessOrEqual(t, int(builds.Load()), workers)
	}
}

// TestAttempts_Budget checks that exhausted budgets are reported separately.
func TestAttempts_Budget(t *testing.T) {
	weights, c := unconstrained(1, 1)
	build := func() (*wfc.Model, error) {
		return wfc.New(weights, c, wfc.WithSize(2, 2))
	}

	opts := wfc.AttemptOptions{Seed: 1, Attempts: 3, Workers: 1, Limit: 0}
	_, err := wfc.Attempts(context.Background(), build, opts)
	require.ErrorIs(t, err, wfc.ErrNoSolution)
	assert.Contains(t, err.Error(), "0 failed, 3 ran out of budget")
}

// TestAttempts_Errors covers build failures and cancellation.
func TestAttempts_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := wfc.Attempts(context.Background(), func() (*wfc.Model, error) { return nil, boom }, wfc.DefaultAttemptOptions())
	assert.ErrorIs(t, err, boom)

	weights, c := unconstrained(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = wfc.Attempts(ctx, func() (*wfc.Model, error) {
		return wfc.New(weights, c, wfc.WithSize(2, 2))
	}, wfc.DefaultAttemptOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAttempts_CancelBetweenAttempts cancels the context from inside the
// first attempt: that attempt runs to its end, and no further one starts.
func TestAttempts_CancelBetweenAttempts(t *testing.T) {
	weights, c := checkerboard()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var contradictions atomic.Int64
	build := func() (*wfc.Model, error) {
		return wfc.New(weights, c,
			wfc.WithSize(3, 3),
			wfc.WithPeriodic(true),
			wfc.WithOnContradiction(func(int) {
				contradictions.Add(1)
				cancel()
			}),
		)
	}

	opts := wfc.DefaultAttemptOptions()
	opts.Workers = 1
	_, err := wfc.Attempts(ctx, build, opts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), contradictions.Load())
}
