package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/santa/tour"
)

func TestCopyAndReverse(t *testing.T) {
	src := []int{0, 3, 1, 2}

	cp := tour.Copy(src)
	cp[0] = 9
	assert.Equal(t, 0, src[0])

	assert.Equal(t, []int{2, 1, 3, 0}, tour.Reverse(src))
	assert.Equal(t, []int{0, 3, 1, 2}, src)
	assert.Equal(t, []int{7}, tour.Reverse([]int{7}))
	assert.Nil(t, tour.Reverse(nil))
	assert.Nil(t, tour.Copy(nil))
}

func TestShuffledTour(t *testing.T) {
	const n = 50

	a, err := tour.ShuffledTour(n, 0, 7)
	require.NoError(t, err)
	require.NoError(t, tour.ValidateClosed(a, n, 0))

	Repeat(t, 3, func(t *testing.T) {
		b, err := tour.ShuffledTour(n, 0, 7)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	c, err := tour.ShuffledTour(n, 0, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// Seed 0 maps to the default seed.
	z0, err := tour.ShuffledTour(n, 3, 0)
	require.NoError(t, err)
	z1, err := tour.ShuffledTour(n, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, z0, z1)
	require.NoError(t, tour.ValidateClosed(z0, n, 3))

	one, err := tour.ShuffledTour(1, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, one)

	_, err = tour.ShuffledTour(n, n, 1)
	require.ErrorIs(t, err, tour.ErrInvalidIndex)
	_, err = tour.ShuffledTour(0, 0, 1)
	require.ErrorIs(t, err, tour.ErrInvalidIndex)
}
