package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/santa/tour"
)

func TestValidateIndices(t *testing.T) {
	require.NoError(t, tour.ValidateIndices([]int{0, 4, 2}, 5))
	require.ErrorIs(t, tour.ValidateIndices(nil, 5), tour.ErrEmptyTour)
	require.ErrorIs(t, tour.ValidateIndices([]int{0, 5}, 5), tour.ErrInvalidIndex)
	require.ErrorIs(t, tour.ValidateIndices([]int{-3}, 5), tour.ErrInvalidIndex)
}

func TestValidateClosed(t *testing.T) {
	const n = 4
	cases := []struct {
		name  string
		tour  []int
		start int
		want  error
	}{
		{"valid", []int{0, 2, 1, 3, 0}, 0, nil},
		{"valid other start", []int{2, 0, 1, 3, 2}, 2, nil},
		{"empty", nil, 0, tour.ErrEmptyTour},
		{"out of range", []int{0, 1, 7, 3, 0}, 0, tour.ErrInvalidIndex},
		{"bad start", []int{0, 1, 2, 3, 0}, 4, tour.ErrInvalidIndex},
		{"single city", []int{0}, 0, tour.ErrNotClosed},
		{"open", []int{0, 1, 2, 3}, 0, tour.ErrNotClosed},
		{"wrong start", []int{1, 0, 2, 3, 1}, 0, tour.ErrNotClosed},
		{"duplicate", []int{0, 1, 1, 3, 0}, 0, tour.ErrDuplicateCity},
		{"start revisited", []int{0, 1, 0, 2, 3, 0}, 0, tour.ErrDuplicateCity},
		{"missing", []int{0, 1, 2, 0}, 0, tour.ErrMissingCity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tour.ValidateClosed(tc.tour, n, tc.start)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
