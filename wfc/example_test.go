// Package wfc_test provides runnable examples for the solver.
package wfc_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/wfc"
)

// ExampleModel_Run solves a periodic checkerboard: one collapse decides
// every cell through propagation.
func ExampleModel_Run() {
	// 1) Two patterns that must differ from all four neighbours.
	compat := wfc.NewCompatibility(2)
	for _, d := range grid.Directions {
		compat.Allow(d, 0, 1)
		compat.Allow(d, 1, 0)
	}

	// 2) An 8×8 torus; count the weighted choices.
	collapses := 0
	m, err := wfc.New([]float64{1, 1}, compat,
		wfc.WithSize(8, 8),
		wfc.WithPeriodic(true),
		wfc.WithOnCollapse(func(int, int) { collapses++ }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Solve and check the result alternates along the first row.
	outcome := m.Run(42, wfc.Unbounded)
	cells, _ := m.Observed()
	alternating := true
	for x := 1; x < 8; x++ {
		alternating = alternating && cells[x] != cells[x-1]
	}
	fmt.Println(outcome, collapses, alternating)
	// Output: success 1 true
}

// ExampleAttempts shows the error of an instance no seed can solve: a
// checkerboard cannot wrap around an odd-sized torus.
func ExampleAttempts() {
	compat := wfc.NewCompatibility(2)
	for _, d := range grid.Directions {
		compat.Allow(d, 0, 1)
		compat.Allow(d, 1, 0)
	}
	build := func() (*wfc.Model, error) {
		return wfc.New([]float64{1, 1}, compat, wfc.WithSize(5, 5), wfc.WithPeriodic(true))
	}

	opts := wfc.DefaultAttemptOptions()
	opts.Attempts = 4
	_, err := wfc.Attempts(context.Background(), build, opts)
	fmt.Println(err)
	// Output: wfc: no attempt produced a solution: 4 failed, 0 ran out of budget
}
