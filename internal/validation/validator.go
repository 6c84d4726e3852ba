package validation

import (
	"errors"
	"fmt"
)

var (
	ErrNotPrime      = errors.New("not prime")
	ErrNotPalindrome = errors.New("not a palindrome")
)

// Validate reports whether n is a prime palindrome.
// When it is not, the returned error wraps ErrNotPrime and/or ErrNotPalindrome.
func Validate(n int) (bool, error) {
	var errs []error
	if !IsPrime(n) {
		errs = append(errs, fmt.Errorf("%d is %w", n, ErrNotPrime))
	}
	if !IsPalindrome(n) {
		errs = append(errs, fmt.Errorf("%d is %w", n, ErrNotPalindrome))
	}

	if len(errs) > 0 {
		return false, errors.Join(errs...)
	}
	return true, nil
}
