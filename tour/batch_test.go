package tour_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/santa/cities"
	"github.com/katalvlaran/santa/tour"
)

func TestCostAll_MatchesSequential(t *testing.T) {
	tbl := gridTable(t, 300, 20)
	e := mustEvaluator(t, tbl, cities.PrimeSet(tbl.Len()))

	tours := make([][]int, 16)
	var i int
	for i = range tours {
		tr, err := tour.ShuffledTour(tbl.Len(), 0, int64(i+1))
		require.NoError(t, err)
		tours[i] = tr
	}

	for _, workers := range []int{0, 1, 3, 64} {
		got, err := e.CostAll(context.Background(), tours, workers)
		require.NoError(t, err)
		require.Len(t, got, len(tours))
		for i = range tours {
			want, err := e.Cost(tours[i])
			require.NoError(t, err)
			assert.Equal(t, want, got[i], "workers=%d tour=%d", workers, i)
		}
	}
}

func TestCostAll_Empty(t *testing.T) {
	e := mustEvaluator(t, lineTable(t, 3), mustSpecials(t))
	got, err := e.CostAll(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCostAll_PropagatesTourError(t *testing.T) {
	e := mustEvaluator(t, lineTable(t, 4), mustSpecials(t))
	tours := [][]int{{0, 1}, {0, 9}, {2, 3}}

	got, err := e.CostAll(context.Background(), tours, 1)
	require.ErrorIs(t, err, tour.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "tour 1")
	assert.Nil(t, got)
}

func TestCostAll_CancelledContext(t *testing.T) {
	e := mustEvaluator(t, lineTable(t, 4), mustSpecials(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.CostAll(ctx, [][]int{{0, 1}, {1, 2}}, 2)
	require.ErrorIs(t, err, context.Canceled)
}
