// SPDX-License-Identifier: MIT
// Package cities: coordinate table.

package cities

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Table stores city coordinates as two parallel slices indexed by city id.
// A Table is immutable once built; accessors never copy.
type Table struct {
	x []float64
	y []float64
}

// NewTable builds a Table from parallel coordinate slices. Inputs are copied,
// so later writes by the caller do not leak into the table.
//
// Errors: ErrEmptyTable, ErrLengthMismatch, ErrNonFinite (wrapped with the id).
//
// Complexity: O(N).
func NewTable(x, y []float64) (*Table, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) == 0 {
		return nil, ErrEmptyTable
	}

	var i int
	for i = range x {
		if !finite(x[i]) || !finite(y[i]) {
			return nil, fmt.Errorf("city %d: %w", i, ErrNonFinite)
		}
	}

	t := &Table{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(t.x, x)
	copy(t.y, y)

	return t, nil
}

// Len returns the number of cities N.
func (t *Table) Len() int { return len(t.x) }

// X returns the x coordinate of city i. Panics if i is out of range;
// callers validate ids at their boundary.
func (t *Table) X(i int) float64 { return t.x[i] }

// Y returns the y coordinate of city i.
func (t *Table) Y(i int) float64 { return t.y[i] }

// Point returns city i as a planar point.
func (t *Table) Point(i int) orb.Point { return orb.Point{t.x[i], t.y[i]} }

// Contains reports whether i is a valid city id for this table.
func (t *Table) Contains(i int) bool { return i >= 0 && i < len(t.x) }

// Bound returns the axis-aligned bounding box of all cities.
//
// Complexity: O(N).
func (t *Table) Bound() orb.Bound {
	b := orb.Bound{Min: t.Point(0), Max: t.Point(0)}

	var i int
	for i = 1; i < len(t.x); i++ {
		b = b.Extend(t.Point(i))
	}

	return b
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
