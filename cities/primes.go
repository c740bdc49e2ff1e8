package cities

// Primes returns every prime p with 2 <= p < limit in ascending order, using
// the sieve of Eratosthenes. limit <= 2 yields an empty slice.
//
// Complexity: O(limit log log limit) time, O(limit) space.
func Primes(limit int) []int {
	if limit <= 2 {
		return []int{}
	}

	composite := make([]bool, limit)
	var (
		i, j int
		out  = make([]int, 0, limit/8)
	)
	for i = 2; i < limit; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j = i * i; j < limit; j += i {
			composite[j] = true
		}
	}

	return out
}

// PrimeSet returns the special set of prime city ids in [0, n).
// For the 197769-city Kaggle instance it holds 17802 ids.
func PrimeSet(n int) *SpecialSet {
	return NewSpecialSetSorted(Primes(n))
}
