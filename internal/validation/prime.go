package validation

// IsPrime checks if n is prime by counting its divisors in [1, n-1].
// A prime has exactly one such divisor (1). Runs in O(n).
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}

	divisors := 0
	for i := 1; i < n; i++ {
		if n%i == 0 {
			divisors++
		}
	}

	return divisors == 1
}
