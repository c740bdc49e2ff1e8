// SPDX-License-Identifier: MIT
// Package tour: per-leg breakdown.

package tour

// Leg describes one step of a tour.
//
//   - Step      — 1-based position of the arrival city in the tour.
//   - From, To  — departure and arrival city ids.
//   - Distance  — raw Euclidean length.
//   - Penalized — whether the surcharge applied.
//   - Cost      — Distance, times the penalty when Penalized.
type Leg struct {
	Step      int
	From      int
	To        int
	Distance  float64
	Penalized bool
	Cost      float64
}

// Legs returns the breakdown of tour, one Leg per step. Summing Cost in order
// reproduces Evaluator.Cost bit for bit.
//
// Errors: as Cost.
//
// Complexity: O(L) time and memory.
func (e *Evaluator) Legs(tour []int) ([]Leg, error) {
	if err := ValidateIndices(tour, e.table.Len()); err != nil {
		return nil, err
	}

	legs := make([]Leg, 0, len(tour)-1)
	var (
		l    Leg
		step int
	)
	for step = 1; step < len(tour); step++ {
		l = Leg{Step: step, From: tour[step-1], To: tour[step]}
		l.Distance = e.distance(l.From, l.To)
		l.Cost = l.Distance
		if e.surcharged(step, l.From) {
			l.Penalized = true
			l.Cost *= e.penalty
		}
		legs = append(legs, l)
	}

	return legs, nil
}

// RawDistance returns the tour length without any surcharge.
//
// Errors: as Cost.
func (e *Evaluator) RawDistance(tour []int) (float64, error) {
	if err := ValidateIndices(tour, e.table.Len()); err != nil {
		return 0, err
	}

	var (
		total float64
		step  int
	)
	for step = 1; step < len(tour); step++ {
		total += e.distance(tour[step-1], tour[step])
	}
	return total, nil
}

// PenaltyCost returns the distance added by surcharges: Cost − RawDistance.
//
// Errors: as Cost.
func (e *Evaluator) PenaltyCost(tour []int) (float64, error) {
	total, err := e.Cost(tour)
	if err != nil {
		return 0, err
	}
	raw, err := e.RawDistance(tour)
	if err != nil {
		return 0, err
	}
	return total - raw, nil
}
