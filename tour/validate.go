// SPDX-License-Identifier: MIT
// Package tour: boundary validation.
//
// Side-effect free helpers; they return sentinels from errors.go and never panic.

package tour

import "fmt"

// ValidateIndices checks that tour is non-empty and every id lies in [0, n).
//
// Errors: ErrEmptyTour, ErrInvalidIndex (wrapped with step and id).
//
// Complexity: O(L).
func ValidateIndices(tour []int, n int) error {
	if len(tour) == 0 {
		return ErrEmptyTour
	}

	var (
		i int
		v int
	)
	for i = range tour {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: step %d holds city %d, table has %d cities", ErrInvalidIndex, i, v, n)
		}
	}
	return nil
}

// ValidateClosed enforces the submission rules for an n-city table: the tour
// starts and ends at start and visits every other city exactly once, so
// len(tour) == n+1.
//
// Errors: ErrEmptyTour, ErrInvalidIndex, ErrNotClosed, ErrDuplicateCity,
// ErrMissingCity.
//
// Complexity: O(n) time and space.
func ValidateClosed(tour []int, n int, start int) error {
	if err := ValidateIndices(tour, n); err != nil {
		return err
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start city %d", ErrInvalidIndex, start)
	}

	var last = len(tour) - 1
	if last == 0 || tour[0] != start || tour[last] != start {
		return ErrNotClosed
	}

	seen := make([]bool, n)
	var i int
	for i = 0; i < last; i++ {
		if seen[tour[i]] {
			return fmt.Errorf("%w: city %d at step %d", ErrDuplicateCity, tour[i], i)
		}
		seen[tour[i]] = true
	}
	if last != n {
		return fmt.Errorf("%w: %d of %d cities visited", ErrMissingCity, last, n)
	}
	return nil
}
