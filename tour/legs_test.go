package tour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/santa/cities"
	"github.com/katalvlaran/santa/tour"
)

func TestLegs_SumMatchesCostBitForBit(t *testing.T) {
	tbl := gridTable(t, 500, 23)
	e := mustEvaluator(t, tbl, cities.PrimeSet(tbl.Len()))

	tr, err := tour.ShuffledTour(tbl.Len(), 0, 42)
	require.NoError(t, err)

	want, err := e.Cost(tr)
	require.NoError(t, err)
	legs, err := e.Legs(tr)
	require.NoError(t, err)
	require.Len(t, legs, len(tr)-1)

	var sum float64
	for _, l := range legs {
		sum += l.Cost
	}
	assert.Equal(t, math.Float64bits(want), math.Float64bits(sum))
}

func TestLegs_SingleCity(t *testing.T) {
	e := mustEvaluator(t, lineTable(t, 3), mustSpecials(t))
	legs, err := e.Legs([]int{2})
	require.NoError(t, err)
	assert.Empty(t, legs)
}

func TestRawAndPenaltyCost(t *testing.T) {
	e := mustEvaluator(t, lineTable(t, 21), mustSpecials(t))
	tr := identity(21)

	raw, err := e.RawDistance(tr)
	require.NoError(t, err)
	assert.Equal(t, 20.0, raw)

	// Steps 10 and 20 depart non-special cities 9 and 19.
	extra, err := e.PenaltyCost(tr)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, extra, epsTiny)

	extra, err = mustEvaluator(t, lineTable(t, 21), mustSpecials(t, 9, 19)).PenaltyCost(tr)
	require.NoError(t, err)
	assert.Equal(t, 0.0, extra)
}
