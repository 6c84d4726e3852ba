package validation

// IsPalindrome checks if the decimal digits of n read the same in both directions.
// It reverses the digits arithmetically and compares the result with n.
// Zero and every single digit are palindromes; negative numbers never are.
func IsPalindrome(n int) bool {
	if n < 0 {
		return false
	}

	reversed := 0
	for rest := n; rest != 0; rest /= 10 {
		reversed = reversed*10 + rest%10
	}

	return reversed == n
}
