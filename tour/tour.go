// Package tour — tour sequence utilities.
package tour

// Copy returns an independent copy of tour.
//
// Complexity: O(L).
func Copy(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// Reverse returns a reversed copy of tour. The reversed tour walks the same
// legs backwards, but its cost generally differs: the surcharge is decided by
// step position and departure city, both of which change under reversal.
//
// Complexity: O(L).
func Reverse(tour []int) []int {
	if tour == nil {
		return nil
	}
	var (
		n   = len(tour)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}
	return out
}
