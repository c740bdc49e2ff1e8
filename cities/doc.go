// Package cities holds the read-only geography a Santa tour is scored against.
//
// Two structures live here:
//
//   - Table: parallel X/Y coordinate slices indexed by city id in [0, N).
//   - SpecialSet: a sorted, duplicate-free set of city ids. In the Kaggle
//     "Traveling Santa 2018" instance these are the prime-numbered cities.
//
// Both are built once and never mutated afterwards, so a single instance can
// be shared by any number of goroutines without locking.
//
// Loading:
//
//	tbl, err := cities.LoadCSV("cities.csv") // CityId,X,Y
//	if err != nil {
//		// ErrBadRecord, ErrNonFinite, ErrEmptyTable ...
//	}
//	primes := cities.PrimeSet(tbl.Len())
//
// Complexity:
//   - NewTable / ReadCSV: O(N) time and memory.
//   - NewSpecialSet: O(k log k); Contains: O(log k).
//   - Primes(limit): O(limit log log limit).
package cities
