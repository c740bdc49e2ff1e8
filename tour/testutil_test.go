// Package tour_test provides small fixtures shared across *_test.go files.
package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/santa/cities"
	"github.com/katalvlaran/santa/tour"
)

// epsTiny is the tolerance for comparisons involving the 1.1 multiplier.
const epsTiny = 1e-9

// Repeat runs fn n times to surface nondeterminism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// lineTable places n cities at (i, 0): every consecutive leg has length 1.
func lineTable(t *testing.T, n int) *cities.Table {
	t.Helper()
	x := make([]float64, n)
	y := make([]float64, n)
	var i int
	for i = range x {
		x[i] = float64(i)
	}
	tbl, err := cities.NewTable(x, y)
	require.NoError(t, err)
	return tbl
}

// gridTable places n cities on a unit grid of the given width, row-major.
func gridTable(t *testing.T, n, width int) *cities.Table {
	t.Helper()
	x := make([]float64, n)
	y := make([]float64, n)
	var i int
	for i = range x {
		x[i] = float64(i % width)
		y[i] = float64(i / width)
	}
	tbl, err := cities.NewTable(x, y)
	require.NoError(t, err)
	return tbl
}

// identity returns the tour 0, 1, ..., n-1.
func identity(n int) []int {
	out := make([]int, n)
	var i int
	for i = range out {
		out[i] = i
	}
	return out
}

func mustSpecials(t *testing.T, ids ...int) *cities.SpecialSet {
	t.Helper()
	s, err := cities.NewSpecialSet(ids)
	require.NoError(t, err)
	return s
}

func mustEvaluator(t *testing.T, tbl *cities.Table, s *cities.SpecialSet, opts ...tour.Option) *tour.Evaluator {
	t.Helper()
	e, err := tour.NewEvaluator(tbl, s, opts...)
	require.NoError(t, err)
	return e
}
