package common

import "math"

// Prime candidates for the dilation sampling scheme.

// IsPrime reports whether n is usable as a prime dilation candidate.
// 1 and 2 are both accepted: trial division by odd factors only starts at 3,
// and keeping 1 guarantees that a unit dilation is always drawable when the
// dilation bound collapses to 1.
func IsPrime(n int) bool {
	if (n%2 == 0 && n > 2) || n == 0 {
		return false
	}
	for i := 3; i <= int(math.Sqrt(float64(n))); i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns all prime dilation candidates <= n in ascending order
func PrimesUpTo(n int) []int {
	var primes []int
	for i := 1; i <= n; i++ {
		if IsPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes
}
