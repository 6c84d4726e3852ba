package validation

import "testing"

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected bool
	}{
		// Edge cases
		{"negative", -7, false},
		{"zero", 0, false},
		{"one", 1, false},

		// Small primes
		{"two", 2, true},
		{"three", 3, true},
		{"five", 5, true},
		{"seven", 7, true},

		// Composites
		{"four", 4, false},
		{"nine", 9, false},
		{"ten", 10, false},
		{"square of prime", 121, false},
		{"upper bound", 999, false},

		// Larger primes
		{"eleven", 11, true},
		{"palindromic prime", 101, true},
		{"largest three digit prime palindrome", 929, true},
		{"largest three digit prime", 997, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsPrime(tt.input)
			if result != tt.expected {
				t.Errorf("IsPrime(%d) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

// Compare the divisor count against trial division up to sqrt(n)
func TestIsPrime_MatchesTrialDivision(t *testing.T) {
	trialDivision := func(n int) bool {
		if n < 2 {
			return false
		}
		for i := 2; i*i <= n; i++ {
			if n%i == 0 {
				return false
			}
		}
		return true
	}

	for n := -5; n < 2000; n++ {
		if got, want := IsPrime(n), trialDivision(n); got != want {
			t.Errorf("IsPrime(%d) = %v, trial division says %v", n, got, want)
		}
	}
}
