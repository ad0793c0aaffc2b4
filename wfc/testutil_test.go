// Package wfc_test provides small pattern tables shared by the solver tests.
package wfc_test

import (
	"testing"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/wfc"
	"github.com/stretchr/testify/require"
)

// seedDet is the fixed seed used wherever a test only needs "some" seed.
const seedDet int64 = 20240611

// checkerboard returns two patterns that must differ from every neighbour.
func checkerboard() ([]float64, wfc.Compatibility) {
	c := wfc.NewCompatibility(2)
	for _, d := range grid.Directions {
		c.Allow(d, 0, 1)
		c.Allow(d, 1, 0)
	}

	return []float64{1, 1}, c
}

// unconstrained returns n patterns with the given weights that may sit
// next to each other in any arrangement.
func unconstrained(weights ...float64) ([]float64, wfc.Compatibility) {
	c := wfc.NewCompatibility(len(weights))
	c.AllowAll()

	return weights, c
}

// mustModel builds a Model or fails the test.
func mustModel(t testing.TB, weights []float64, c wfc.Compatibility, opts ...wfc.Option) *wfc.Model {
	t.Helper()
	m, err := wfc.New(weights, c, opts...)
	require.NoError(t, err)

	return m
}

// requireAlternating asserts that no two neighbouring cells of a solved
// checkerboard hold the same pattern.
func requireAlternating(t testing.TB, m *wfc.Model, observed []int) {
	t.Helper()
	g := m.Grid()
	for i := range observed {
		for _, d := range grid.Directions {
			j, ok := g.Neighbor(i, d, m.Footprint())
			if !ok {
				continue
			}
			require.NotEqualf(t, observed[i], observed[j], "cells %d and %d (%s) match", i, j, d)
		}
	}
}

// requireCompatible asserts that every pair of determined neighbours in a
// solved grid is allowed by c.
func requireCompatible(t testing.TB, m *wfc.Model, c wfc.Compatibility, observed []int) {
	t.Helper()
	g := m.Grid()
	for i, a := range observed {
		if a == wfc.Undetermined {
			continue
		}
		for _, d := range grid.Directions {
			j, ok := g.Neighbor(i, d, m.Footprint())
			if !ok || observed[j] == wfc.Undetermined {
				continue
			}
			require.Containsf(t, c.Allowed(d, a), observed[j], "cell %d=%d, %s neighbour %d=%d", i, a, d, j, observed[j])
		}
	}
}
